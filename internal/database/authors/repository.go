// Package authors provides database operations for authors.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.FindByID(ctx, 1)
package authors

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID retrieves an author by primary key. Returns nil, nil when no row matches.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.WithContext(ctx).First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Save inserts the author when ID is zero and updates it otherwise.
// The in-memory Books collection is not written.
func (r *Repository) Save(ctx context.Context, author *entities.Author) (*entities.Author, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// Delete removes the author row.
func (r *Repository) Delete(ctx context.Context, author *entities.Author) error {
	return r.db.WithContext(ctx).Delete(&entities.Author{}, author.ID).Error
}
