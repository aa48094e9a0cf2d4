package entities

import "time"

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:255;not null" json:"firstName"`
	LastName  string    `gorm:"size:255;not null" json:"lastName"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Books is populated by the caller through AddBook. It is never loaded
	// or written by the repositories; Book.AuthorID is the source of truth.
	Books []Book `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
}

// AddBook appends book to the in-memory collection only.
func (a *Author) AddBook(book Book) {
	a.Books = append(a.Books, book)
}

// FullName joins first and last name with a single space.
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Books has the same non-authoritative semantics as Author.Books.
	Books []Book `gorm:"foreignKey:CategoryID" json:"books,omitempty"`
}

// AddBook appends book to the in-memory collection only.
func (c *Category) AddBook(book Book) {
	c.Books = append(c.Books, book)
}

type Book struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:512" json:"name"`
	CategoryID uint      `gorm:"index" json:"categoryId,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
	AuthorID   *uint     `gorm:"index" json:"authorId,omitempty"`
	Author     *Author   `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// AttachCategory sets both the category reference and its foreign key.
func (b *Book) AttachCategory(category *Category) {
	b.Category = category
	b.CategoryID = category.ID
}

// AttachAuthor sets both the author reference and its foreign key.
func (b *Book) AttachAuthor(author *Author) {
	b.Author = author
	id := author.ID
	b.AuthorID = &id
}

func (Author) TableName() string {
	return "authors"
}

func (Category) TableName() string {
	return "categories"
}

func (Book) TableName() string {
	return "books"
}
