package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func TestCategoryService_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(mockCategoryRepo)
		repo.On("FindByID", ctx, uint(1)).Return(&entities.Category{ID: 1, Name: "Fiction"}, nil)

		got, err := NewCategoryService(repo, nil).FindByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Fiction", got.Name)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(mockCategoryRepo)
		repo.On("FindByID", ctx, uint(999)).Return(nil, nil)

		_, err := NewCategoryService(repo, nil).FindByID(ctx, 999)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCategoryService_Save(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCategoryRepo)
	recorder := new(mockRecorder)

	category := &entities.Category{ID: 1, Name: "Non-Fiction"}
	repo.On("Save", ctx, category).Return(category, nil)
	recorder.On("RecordSave", ctx, "category", uint(1), "Saved category Non-Fiction").Return()

	got, err := NewCategoryService(repo, recorder).Save(ctx, category)

	require.NoError(t, err)
	assert.Same(t, category, got)
	repo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCategoryRepo)
	recorder := new(mockRecorder)

	category := &entities.Category{ID: 3, Name: "Poetry"}
	repo.On("FindByID", ctx, uint(3)).Return(category, nil)
	repo.On("Delete", ctx, category).Return(nil)
	recorder.On("RecordDelete", ctx, "category", uint(3), "Deleted category Poetry").Return()

	require.NoError(t, NewCategoryService(repo, recorder).Delete(ctx, 3))

	repo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}
