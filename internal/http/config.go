package http

import (
	"github.com/mrlokans/library/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Authors    AuthorStore
	Books      BookStore
	Categories CategoryStore
	Database   *database.Database

	// Audit trail (optional)
	AuditLog AuditLog

	// Task queue (optional)
	TaskStatus    TaskStatusReader
	CleanupRunner CleanupRunner

	// Application info
	Version string
}
