// Package categories provides database operations for book categories.
package categories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID retrieves a category by primary key. Returns nil, nil when no row matches.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Save upserts the category by ID.
func (r *Repository) Save(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *Repository) Delete(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Delete(&entities.Category{}, category.ID).Error
}
