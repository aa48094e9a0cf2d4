// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorRepository, BookRepository, CategoryRepository: gorm-backed
//     persistence used by the services (internal/services/interfaces.go)
//   - AuditEventCleaner: retention cleanup for audit events (internal/tasks/cleanup_audit.go)
//
// ## Service Interfaces
//
//   - AuthorStore, BookStore, CategoryStore: what the HTTP controllers need
//     from the services (internal/http/stores.go)
//   - Recorder: save/delete notifications for the audit trail (internal/services/interfaces.go)
//   - AuditLog: read access to recorded events (internal/http/stores.go)
//
// ## Background Work Interfaces
//
//   - TaskEnqueuer: adds tasks to the backlite queue (internal/scheduler/audit_cleanup.go)
//   - TaskStatusReader, CleanupRunner: task endpoints (internal/http/stores.go)
//
// # Adding a New Entity
//
// To add a new entity (e.g., Publisher):
//
//  1. Add the gorm model to internal/entities/ and to AutoMigrate in
//     internal/database/database.go
//
//  2. Create sub-package internal/database/publishers/ with a Repository
//     exposing FindByID, Save and Delete:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add PublisherRepository and PublisherService to internal/services/,
//     returning a *NotFoundError with a new EntityKind for unknown ids
//
//  4. Add a controller in internal/http/ and register its routes in router.go
//
//  5. Add compile-time checks:
//
//     var _ services.PublisherRepository = (*publishers.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
