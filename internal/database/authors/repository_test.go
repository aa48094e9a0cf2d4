package authors

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "authors.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Category{}, &entities.Author{}, &entities.Book{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db), db
}

func TestRepository_SaveAndFindByID(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &entities.Author{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, "John", found.FirstName)
	assert.Equal(t, "Doe", found.LastName)
}

func TestRepository_FindByID_Missing(t *testing.T) {
	repo, _ := setupTestDB(t)

	found, err := repo.FindByID(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_Update(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	author, err := repo.Save(ctx, &entities.Author{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	author.FirstName = "Jane"
	_, err = repo.Save(ctx, author)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane", found.FirstName)
}

func TestRepository_SaveWithUnknownIDInserts(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, &entities.Author{ID: 42, FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "John", found.FirstName)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	author, err := repo.Save(ctx, &entities.Author{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, author))

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_SaveIgnoresBooksCollection(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()

	category := &entities.Category{Name: "Fiction"}
	require.NoError(t, db.Create(category).Error)
	book := &entities.Book{Name: "The Great Adventure", CategoryID: category.ID}
	require.NoError(t, db.Create(book).Error)

	author := &entities.Author{FirstName: "John", LastName: "Doe"}
	author.AddBook(*book)
	_, err := repo.Save(ctx, author)
	require.NoError(t, err)

	var stored entities.Book
	require.NoError(t, db.First(&stored, book.ID).Error)
	assert.Nil(t, stored.AuthorID)

	var count int64
	require.NoError(t, db.Model(&entities.Book{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_NameColumns(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()

	t.Run("null names are rejected by the schema", func(t *testing.T) {
		err := db.Exec("INSERT INTO authors (first_name, last_name) VALUES (NULL, NULL)").Error
		assert.Error(t, err)
	})

	t.Run("missing names save as empty strings", func(t *testing.T) {
		saved, err := repo.Save(ctx, &entities.Author{})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Empty(t, found.FirstName)
		assert.Empty(t, found.LastName)
	})
}
