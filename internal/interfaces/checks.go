package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/library/internal/audit"
	auditRepo "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/categories"
	"github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/services"
	"github.com/mrlokans/library/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.AuthorRepository = (*authors.Repository)(nil)
var _ services.BookRepository = (*books.Repository)(nil)
var _ services.CategoryRepository = (*categories.Repository)(nil)

var _ tasks.AuditEventCleaner = (*auditRepo.Repository)(nil)

// =============================================================================
// Services
// =============================================================================

var _ http.AuthorStore = (*services.AuthorService)(nil)
var _ http.BookStore = (*services.BookService)(nil)
var _ http.CategoryStore = (*services.CategoryService)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

var _ services.Recorder = (*audit.Service)(nil)
var _ http.AuditLog = (*audit.Service)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ scheduler.TaskEnqueuer = (*tasks.Client)(nil)
var _ http.TaskStatusReader = (*tasks.Client)(nil)
var _ http.CleanupRunner = (*scheduler.AuditCleanupScheduler)(nil)
