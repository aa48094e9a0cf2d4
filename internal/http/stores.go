package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/library/internal/entities"
)

// This file consolidates the interfaces HTTP controllers depend on.
// The services package satisfies the entity stores; see
// internal/interfaces/checks.go for the compile-time checks.

// AuthorStore finds, saves and deletes authors. FindByID and Delete
// return a *services.NotFoundError for unknown ids.
type AuthorStore interface {
	FindByID(ctx context.Context, id uint) (*entities.Author, error)
	Save(ctx context.Context, author *entities.Author) (*entities.Author, error)
	Delete(ctx context.Context, id uint) error
}

// BookStore finds, saves and deletes books.
type BookStore interface {
	FindByID(ctx context.Context, id uint) (*entities.Book, error)
	Save(ctx context.Context, book *entities.Book) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryStore finds, saves and deletes categories.
type CategoryStore interface {
	FindByID(ctx context.Context, id uint) (*entities.Category, error)
	Save(ctx context.Context, category *entities.Category) (*entities.Category, error)
	Delete(ctx context.Context, id uint) error
}

// AuditLog reads recorded audit events.
type AuditLog interface {
	GetRecentEvents(ctx context.Context, limit int) ([]entities.AuditEvent, error)
	GetEntityEvents(ctx context.Context, entityType string, entityID uint) ([]entities.AuditEvent, error)
}

// TaskStatusReader reports the state of an enqueued task.
type TaskStatusReader interface {
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// CleanupRunner enqueues an audit retention cleanup on demand.
type CleanupRunner interface {
	RunNow(ctx context.Context) (string, error)
}
