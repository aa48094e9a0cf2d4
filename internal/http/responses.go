package http

import "github.com/mrlokans/library/internal/entities"

// AuthorResponse is the author summary embedded in book responses.
type AuthorResponse struct {
	ID         uint   `json:"id"`
	AuthorName string `json:"authorName"`
}

type BookResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	CategoryName   string          `json:"categoryName"`
	AuthorResponse *AuthorResponse `json:"authorResponse,omitempty"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newAuthorResponse(author *entities.Author) *AuthorResponse {
	return &AuthorResponse{ID: author.ID, AuthorName: author.FullName()}
}

// newBookResponse projects a book with its attached references. The author
// summary is present only when an author is attached.
func newBookResponse(book *entities.Book) BookResponse {
	resp := BookResponse{ID: book.ID, Name: book.Name}
	if book.Category != nil {
		resp.CategoryName = book.Category.Name
	}
	if book.Author != nil {
		resp.AuthorResponse = newAuthorResponse(book.Author)
	}
	return resp
}

func newCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}
