package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func seedCategory(t *testing.T, lib *testLibrary, name string) *entities.Category {
	t.Helper()
	category, err := lib.categories.Save(context.Background(), &entities.Category{Name: name})
	require.NoError(t, err)
	return category
}

func seedAuthor(t *testing.T, lib *testLibrary, first, last string) *entities.Author {
	t.Helper()
	author, err := lib.authors.Save(context.Background(), &entities.Author{FirstName: first, LastName: last})
	require.NoError(t, err)
	return author
}

func TestBooksController_SaveBookInCategory(t *testing.T) {
	lib := setupLibrary(t)
	seedCategory(t, lib, "Sample Category")

	w := lib.do("POST", "/book/1", `{"name":"Sample Book"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Sample Book","categoryName":"Sample Category"}`, w.Body.String())
	assert.NotContains(t, decodeJSON(t, w), "authorResponse")

	book, err := lib.books.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), book.CategoryID)
	assert.Nil(t, book.AuthorID)
}

func TestBooksController_SaveBookInCategory_IgnoresBodyReferences(t *testing.T) {
	lib := setupLibrary(t)
	seedCategory(t, lib, "Fiction")
	seedCategory(t, lib, "Poetry")

	w := lib.do("POST", "/book/1", `{"name":"Sneaky","authorId":777,"categoryId":2}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Sneaky","categoryName":"Fiction"}`, w.Body.String())

	book, err := lib.books.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, book.AuthorID, "author must only be set through a resolved lookup")
	assert.Equal(t, uint(1), book.CategoryID)
}

func TestBooksController_SaveBookInCategory_Errors(t *testing.T) {
	lib := setupLibrary(t)
	seedCategory(t, lib, "Fiction")

	t.Run("missing category", func(t *testing.T) {
		w := lib.do("POST", "/book/999", `{"name":"Orphan"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "category with id 999 not found", decodeJSON(t, w)["error"])
	})

	t.Run("non-numeric category id", func(t *testing.T) {
		w := lib.do("POST", "/book/abc", `{"name":"Orphan"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid categoryId", decodeJSON(t, w)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		w := lib.do("POST", "/book/1", `not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var count int64
	require.NoError(t, lib.db.DB.Model(&entities.Book{}).Count(&count).Error)
	assert.Zero(t, count, "failed requests must not write books")
}

func TestBooksController_SaveBookByAuthor(t *testing.T) {
	lib := setupLibrary(t)
	category := seedCategory(t, lib, "Fiction")
	author := seedAuthor(t, lib, "John", "Doe")

	w := lib.do("POST", "/book/saveByAuthor?categoryId=1&authorId=1", `{"name":"The Great Adventure"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "The Great Adventure",
		"categoryName": "Fiction",
		"authorResponse": {"id": 1, "authorName": "John Doe"}
	}`, w.Body.String())

	book, err := lib.books.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, category.ID, book.CategoryID)
	require.NotNil(t, book.AuthorID)
	assert.Equal(t, author.ID, *book.AuthorID)
}

func TestBooksController_SaveBookByAuthor_Errors(t *testing.T) {
	lib := setupLibrary(t)
	seedCategory(t, lib, "Fiction")
	seedAuthor(t, lib, "John", "Doe")

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{"missing author", "/book/saveByAuthor?categoryId=1&authorId=42", http.StatusNotFound, "author with id 42 not found"},
		{"missing category", "/book/saveByAuthor?categoryId=42&authorId=1", http.StatusNotFound, "category with id 42 not found"},
		{"authorId absent", "/book/saveByAuthor?categoryId=1", http.StatusBadRequest, "authorId is required"},
		{"categoryId absent", "/book/saveByAuthor?authorId=1", http.StatusBadRequest, "categoryId is required"},
		{"authorId not a number", "/book/saveByAuthor?categoryId=1&authorId=x", http.StatusBadRequest, "invalid authorId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := lib.do("POST", tt.path, `{"name":"Sample Book"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeJSON(t, w)["error"])
		})
	}

	var count int64
	require.NoError(t, lib.db.DB.Model(&entities.Book{}).Count(&count).Error)
	assert.Zero(t, count, "nothing is written when a reference cannot be resolved")
}

func TestBooksController_GetBook(t *testing.T) {
	lib := setupLibrary(t)
	seedCategory(t, lib, "Fiction")
	seedAuthor(t, lib, "Jane", "Roe")
	require.Equal(t, http.StatusOK, lib.do("POST", "/book/1", `{"name":"Alone"}`).Code)
	require.Equal(t, http.StatusOK, lib.do("POST", "/book/saveByAuthor?categoryId=1&authorId=1", `{"name":"Together"}`).Code)

	t.Run("without author", func(t *testing.T) {
		w := lib.do("GET", "/book/1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Alone","categoryName":"Fiction"}`, w.Body.String())
	})

	t.Run("with author", func(t *testing.T) {
		w := lib.do("GET", "/book/2", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		authorResponse := body["authorResponse"].(map[string]any)
		assert.Equal(t, "Jane Roe", authorResponse["authorName"])
	})

	t.Run("missing", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, lib.do("GET", "/book/999", "").Code)
	})
}

func TestBooksController_DeleteBook(t *testing.T) {
	lib := setupLibrary(t)
	seedCategory(t, lib, "Fiction")
	require.Equal(t, http.StatusOK, lib.do("POST", "/book/1", `{"name":"Short Lived"}`).Code)

	w := lib.do("DELETE", "/book/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, err := lib.books.FindByID(context.Background(), 1)
	assert.ErrorContains(t, err, "not found")
	assert.Equal(t, http.StatusNotFound, lib.do("DELETE", "/book/1", "").Code)
}
