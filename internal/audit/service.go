package audit

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/entities"
)

const maxTextLen = 500

// Service provides high-level audit logging functionality.
type Service struct {
	repo    *audit.Repository
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// Wait blocks until every event passed to LogAsync has been written.
func (s *Service) Wait() {
	s.pending.Wait()
}

// RecordSave records a successful save of an author, book or category.
func (s *Service) RecordSave(ctx context.Context, entityType string, entityID uint, description string) {
	s.LogAsync(newEvent(ctx, entities.AuditEventSave, entityType, entityID, description))
}

// RecordDelete records a successful deletion.
func (s *Service) RecordDelete(ctx context.Context, entityType string, entityID uint, description string) {
	s.LogAsync(newEvent(ctx, entities.AuditEventDelete, entityType, entityID, description))
}

// RecordFailure records an operation that did not complete.
func (s *Service) RecordFailure(ctx context.Context, eventType entities.AuditEventType, entityType string, err error) {
	event := &entities.AuditEvent{
		EventType:  eventType,
		Action:     entityType + "_" + string(eventType),
		EntityType: entityType,
		RequestID:  RequestIDFrom(ctx),
		Status:     entities.AuditStatusFailed,
		ErrorMsg:   truncate(err.Error(), maxTextLen),
	}
	s.LogAsync(event)
}

// GetRecentEvents returns at most limit events, newest first.
func (s *Service) GetRecentEvents(ctx context.Context, limit int) ([]entities.AuditEvent, error) {
	return s.repo.GetRecentEvents(ctx, limit)
}

// GetEntityEvents returns the recorded history of one entity.
func (s *Service) GetEntityEvents(ctx context.Context, entityType string, entityID uint) ([]entities.AuditEvent, error) {
	return s.repo.GetEntityEvents(ctx, entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	return s.repo.DeleteOldEvents(retention)
}

func newEvent(ctx context.Context, eventType entities.AuditEventType, entityType string, entityID uint, description string) *entities.AuditEvent {
	return &entities.AuditEvent{
		EventType:   eventType,
		Action:      entityType + "_" + string(eventType),
		Description: truncate(description, maxTextLen),
		EntityType:  entityType,
		EntityID:    &entityID,
		RequestID:   RequestIDFrom(ctx),
		Status:      entities.AuditStatusSuccess,
	}
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
