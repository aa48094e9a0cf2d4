package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mrlokans/library/internal/entities"
)

type mockAuthorRepo struct {
	mock.Mock
}

func (m *mockAuthorRepo) FindByID(ctx context.Context, id uint) (*entities.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Author), args.Error(1)
}

func (m *mockAuthorRepo) Save(ctx context.Context, author *entities.Author) (*entities.Author, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Author), args.Error(1)
}

func (m *mockAuthorRepo) Delete(ctx context.Context, author *entities.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *mockBookRepo) Save(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *mockBookRepo) Delete(ctx context.Context, book *entities.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uint) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, category *entities.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordSave(ctx context.Context, entityType string, entityID uint, description string) {
	m.Called(ctx, entityType, entityID, description)
}

func (m *mockRecorder) RecordDelete(ctx context.Context, entityType string, entityID uint, description string) {
	m.Called(ctx, entityType, entityID, description)
}

func (m *mockRecorder) RecordFailure(ctx context.Context, eventType entities.AuditEventType, entityType string, err error) {
	m.Called(ctx, eventType, entityType, err)
}
