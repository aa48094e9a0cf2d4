package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

type AuthorsController struct {
	authors AuthorStore
	books   BookStore
}

func NewAuthorsController(authors AuthorStore, books BookStore) *AuthorsController {
	return &AuthorsController{authors: authors, books: books}
}

// SaveAuthor handles POST /author
func (ac *AuthorsController) SaveAuthor(c *gin.Context) {
	var author entities.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		respondInvalidBody(c, err)
		return
	}

	saved, err := ac.authors.Save(c.Request.Context(), &author)
	if err != nil {
		respondServiceError(c, err, "save author")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SaveAuthorWithBook handles POST /author/:bookId
// The book is attached to the author's in-memory collection only; the
// book row keeps its current author_id.
func (ac *AuthorsController) SaveAuthorWithBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	var author entities.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		respondInvalidBody(c, err)
		return
	}

	ctx := c.Request.Context()
	book, err := ac.books.FindByID(ctx, bookID)
	if err != nil {
		respondServiceError(c, err, "find book")
		return
	}
	author.AddBook(*book)

	saved, err := ac.authors.Save(ctx, &author)
	if err != nil {
		respondServiceError(c, err, "save author")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GetAuthor handles GET /author/:id
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.authors.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "find author")
		return
	}

	c.JSON(http.StatusOK, author)
}

// DeleteAuthor handles DELETE /author/:id
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.authors.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete author")
		return
	}

	respondSuccess(c, "author deleted")
}
