package services

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// EventSink receives domain events after the primary write has committed.
// Publish never fails the caller.
type EventSink interface {
	Publish(ctx context.Context, event domain.Event)
}

type AuditSvc interface {
	ListAuditEntries(ctx context.Context, actorUserID string, entityType *string, limit int, offset int) ([]domain.AuditLogEntry, error)
}

type NotificationSvc interface {
	ListNotifications(ctx context.Context, actorUserID string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, actorUserID string, notificationID string) error
}

type DashboardSvc interface {
	GetSummary(ctx context.Context, actorUserID string) (*domain.DashboardSummary, error)
}
