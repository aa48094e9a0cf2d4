// Package books provides database operations for books.
//
// Book is the owning side of both relationships: Save writes category_id
// and author_id but never the referenced Category or Author rows.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.FindByID(ctx, 123)
package books

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID retrieves a book with its category and author preloaded.
// Returns nil, nil when no row matches.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Preload("Category").Preload("Author").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Save inserts the book when ID is zero and updates it otherwise.
func (r *Repository) Save(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	// Use Omit to prevent GORM from upserting the referenced Category and Author
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

func (r *Repository) Delete(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Delete(&entities.Book{}, book.ID).Error
}
