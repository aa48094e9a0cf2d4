package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

type BooksController struct {
	books      BookStore
	authors    AuthorStore
	categories CategoryStore
}

func NewBooksController(books BookStore, authors AuthorStore, categories CategoryStore) *BooksController {
	return &BooksController{
		books:      books,
		authors:    authors,
		categories: categories,
	}
}

// saveBookRequest is the body accepted by the book save endpoints.
// References come from the path or query, never from the body.
type saveBookRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (r saveBookRequest) toBook() *entities.Book {
	return &entities.Book{ID: r.ID, Name: r.Name}
}

// SaveBookInCategory handles POST /book/:categoryId
func (bc *BooksController) SaveBookInCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	var req saveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}
	book := req.toBook()

	ctx := c.Request.Context()
	category, err := bc.categories.FindByID(ctx, categoryID)
	if err != nil {
		respondServiceError(c, err, "find category")
		return
	}
	book.AttachCategory(category)

	saved, err := bc.books.Save(ctx, book)
	if err != nil {
		respondServiceError(c, err, "save book")
		return
	}

	c.JSON(http.StatusOK, newBookResponse(saved))
}

// SaveBookByAuthor handles POST /book/saveByAuthor?categoryId=&authorId=
// Both references are resolved before anything is written.
func (bc *BooksController) SaveBookByAuthor(c *gin.Context) {
	categoryID, ok := parseQueryID(c, "categoryId")
	if !ok {
		return
	}
	authorID, ok := parseQueryID(c, "authorId")
	if !ok {
		return
	}

	var req saveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}
	book := req.toBook()

	ctx := c.Request.Context()
	category, err := bc.categories.FindByID(ctx, categoryID)
	if err != nil {
		respondServiceError(c, err, "find category")
		return
	}
	author, err := bc.authors.FindByID(ctx, authorID)
	if err != nil {
		respondServiceError(c, err, "find author")
		return
	}
	book.AttachCategory(category)
	book.AttachAuthor(author)

	saved, err := bc.books.Save(ctx, book)
	if err != nil {
		respondServiceError(c, err, "save book")
		return
	}

	c.JSON(http.StatusOK, newBookResponse(saved))
}

// GetBook handles GET /book/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.books.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "find book")
		return
	}

	c.JSON(http.StatusOK, newBookResponse(book))
}

// DeleteBook handles DELETE /book/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.books.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}

	respondSuccess(c, "book deleted")
}
