package services

import (
	"errors"
	"fmt"
)

// EntityKind names the entity a lookup was for.
type EntityKind string

const (
	KindAuthor   EntityKind = "author"
	KindBook     EntityKind = "book"
	KindCategory EntityKind = "category"
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError is returned when a lookup by id yields no row.
type NotFoundError struct {
	Kind EntityKind
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(kind EntityKind, id uint) error {
	return &NotFoundError{Kind: kind, ID: id}
}
