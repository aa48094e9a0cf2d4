package services

import (
	"context"
	"fmt"

	"github.com/mrlokans/library/internal/entities"
)

type CategoryService struct {
	repo     CategoryRepository
	recorder Recorder
}

// NewCategoryService creates a category service. recorder may be nil.
func NewCategoryService(repo CategoryRepository, recorder Recorder) *CategoryService {
	return &CategoryService{repo: repo, recorder: recorderOrNop(recorder)}
}

func (s *CategoryService) FindByID(ctx context.Context, id uint) (*entities.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	if category == nil {
		return nil, notFound(KindCategory, id)
	}
	return category, nil
}

func (s *CategoryService) Save(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	saved, err := s.repo.Save(ctx, category)
	if err != nil {
		s.recorder.RecordFailure(ctx, entities.AuditEventSave, string(KindCategory), err)
		return nil, fmt.Errorf("save category: %w", err)
	}
	s.recorder.RecordSave(ctx, string(KindCategory), saved.ID, "Saved category "+saved.Name)
	return saved, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, category); err != nil {
		s.recorder.RecordFailure(ctx, entities.AuditEventDelete, string(KindCategory), err)
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	s.recorder.RecordDelete(ctx, string(KindCategory), id, "Deleted category "+category.Name)
	return nil
}
