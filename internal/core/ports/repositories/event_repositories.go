package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// AuditLogRepository appends and lists audit records
type AuditLogRepository interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditLogEntry) error
	ListAuditEntries(ctx context.Context, entityType *string, limit int, offset int) ([]domain.AuditLogEntry, error)
}

// NotificationRepository stores per-recipient notifications
type NotificationRepository interface {
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error
	ListNotificationsForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)

	// MarkNotificationRead flags one of the user's notifications as read.
	MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
}

// DashboardRepository computes the aggregate counts shown on the dashboard
type DashboardRepository interface {
	CountOpenWorkItemsByStatus(ctx context.Context) (map[domain.WorkItemStatus]int, error)
	CountStaleOnHold(ctx context.Context, notUpdatedSince time.Time) (int, error)
	CountPendingUpdates(ctx context.Context) (int, error)
}
