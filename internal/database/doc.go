// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and auto-migration
//	├── authors/         # Author find/save/delete
//	├── books/           # Book find/save/delete
//	├── categories/      # Category find/save/delete
//	└── audit/           # Audit event log and retention
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type over a *gorm.DB:
//
//	db, err := database.NewDatabase("./library.db")
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//	categoriesRepo := categories.NewRepository(db.DB)
//
//	author, err := authorsRepo.FindByID(ctx, 1)
//
// FindByID returns (nil, nil) when no row matches. Turning that into a
// not-found error is the job of internal/services.
//
// # Associations
//
// Book owns both foreign keys (category_id, author_id). Repositories write
// with Omit(clause.Associations), so the Books collections on Author and
// Category are never persisted through a save.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
