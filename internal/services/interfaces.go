package services

import (
	"context"

	"github.com/mrlokans/library/internal/entities"
)

// AuthorRepository is the persistence surface AuthorService depends on.
// FindByID returns (nil, nil) when no row matches.
type AuthorRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.Author, error)
	Save(ctx context.Context, author *entities.Author) (*entities.Author, error)
	Delete(ctx context.Context, author *entities.Author) error
}

// BookRepository is the persistence surface BookService depends on.
type BookRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.Book, error)
	Save(ctx context.Context, book *entities.Book) (*entities.Book, error)
	Delete(ctx context.Context, book *entities.Book) error
}

// CategoryRepository is the persistence surface CategoryService depends on.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.Category, error)
	Save(ctx context.Context, category *entities.Category) (*entities.Category, error)
	Delete(ctx context.Context, category *entities.Category) error
}

// Recorder is notified after every save or delete, successful or not.
// Implementations must not block the caller.
type Recorder interface {
	RecordSave(ctx context.Context, entityType string, entityID uint, description string)
	RecordDelete(ctx context.Context, entityType string, entityID uint, description string)
	RecordFailure(ctx context.Context, eventType entities.AuditEventType, entityType string, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordSave(context.Context, string, uint, string) {}

func (nopRecorder) RecordDelete(context.Context, string, uint, string) {}

func (nopRecorder) RecordFailure(context.Context, entities.AuditEventType, string, error) {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
