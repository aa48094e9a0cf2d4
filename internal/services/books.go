package services

import (
	"context"
	"fmt"

	"github.com/mrlokans/library/internal/entities"
)

type BookService struct {
	repo     BookRepository
	recorder Recorder
}

// NewBookService creates a book service. recorder may be nil.
func NewBookService(repo BookRepository, recorder Recorder) *BookService {
	return &BookService{repo: repo, recorder: recorderOrNop(recorder)}
}

func (s *BookService) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find book %d: %w", id, err)
	}
	if book == nil {
		return nil, notFound(KindBook, id)
	}
	return book, nil
}

func (s *BookService) Save(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	saved, err := s.repo.Save(ctx, book)
	if err != nil {
		s.recorder.RecordFailure(ctx, entities.AuditEventSave, string(KindBook), err)
		return nil, fmt.Errorf("save book: %w", err)
	}
	s.recorder.RecordSave(ctx, string(KindBook), saved.ID, "Saved book "+saved.Name)
	return saved, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	book, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, book); err != nil {
		s.recorder.RecordFailure(ctx, entities.AuditEventDelete, string(KindBook), err)
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	s.recorder.RecordDelete(ctx, string(KindBook), id, "Deleted book "+book.Name)
	return nil
}
