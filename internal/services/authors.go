package services

import (
	"context"
	"fmt"

	"github.com/mrlokans/library/internal/entities"
)

type AuthorService struct {
	repo     AuthorRepository
	recorder Recorder
}

// NewAuthorService creates an author service. recorder may be nil.
func NewAuthorService(repo AuthorRepository, recorder Recorder) *AuthorService {
	return &AuthorService{repo: repo, recorder: recorderOrNop(recorder)}
}

func (s *AuthorService) FindByID(ctx context.Context, id uint) (*entities.Author, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find author %d: %w", id, err)
	}
	if author == nil {
		return nil, notFound(KindAuthor, id)
	}
	return author, nil
}

func (s *AuthorService) Save(ctx context.Context, author *entities.Author) (*entities.Author, error) {
	saved, err := s.repo.Save(ctx, author)
	if err != nil {
		s.recorder.RecordFailure(ctx, entities.AuditEventSave, string(KindAuthor), err)
		return nil, fmt.Errorf("save author: %w", err)
	}
	s.recorder.RecordSave(ctx, string(KindAuthor), saved.ID, "Saved author "+saved.FullName())
	return saved, nil
}

// Delete removes the author with the given id. Books keep their author_id.
func (s *AuthorService) Delete(ctx context.Context, id uint) error {
	author, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, author); err != nil {
		s.recorder.RecordFailure(ctx, entities.AuditEventDelete, string(KindAuthor), err)
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	s.recorder.RecordDelete(ctx, string(KindAuthor), id, "Deleted author "+author.FullName())
	return nil
}
