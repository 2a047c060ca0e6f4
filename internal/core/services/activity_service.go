package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
)

const (
	notificationPageSize = 50
	maxAuditPageSize     = 200
)

// auditService exposes the audit log to roles with can-view-audit
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepository
}

func NewAuditService(access portssvc.CapabilityResolver, auditRepo portsrepo.AuditLogRepository, options ...ServiceOption) portssvc.AuditSvc {
	return &auditService{BaseService: newBaseService(access, options), auditRepo: auditRepo}
}

func (s *auditService) ListAuditEntries(ctx context.Context, actorUserID string, entityType *string, limit int, offset int) ([]domain.AuditLogEntry, error) {
	if _, err := s.require(ctx, actorUserID, domain.CapViewAudit); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxAuditPageSize {
		limit = notificationPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if entityType != nil && *entityType == "" {
		entityType = nil
	}
	return s.auditRepo.ListAuditEntries(ctx, entityType, limit, offset)
}

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
}

func NewNotificationService(access portssvc.CapabilityResolver, notificationRepo portsrepo.NotificationRepository, options ...ServiceOption) portssvc.NotificationSvc {
	return &notificationService{BaseService: newBaseService(access, options), notificationRepo: notificationRepo}
}

// ListNotifications returns the caller's newest notifications.
func (s *notificationService) ListNotifications(ctx context.Context, actorUserID string) ([]domain.Notification, error) {
	actor, err := s.Access.ResolveActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return s.notificationRepo.ListNotificationsForUser(ctx, actor.UserID, notificationPageSize)
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, actorUserID string, notificationID string) error {
	actor, err := s.Access.ResolveActor(ctx, actorUserID)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, actor.UserID); err != nil {
		s.LogDebug(ctx, "Failed to mark notification read",
			slog.String("notification_id", notificationID),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
	staleAfter    time.Duration
}

// NewDashboardService creates the dashboard service. ON_HOLD items not updated within
// staleAfter are counted as stale.
func NewDashboardService(access portssvc.CapabilityResolver, dashboardRepo portsrepo.DashboardRepository, staleAfter time.Duration, options ...ServiceOption) portssvc.DashboardSvc {
	if staleAfter <= 0 {
		staleAfter = 72 * time.Hour
	}
	return &dashboardService{
		BaseService:   newBaseService(access, options),
		dashboardRepo: dashboardRepo,
		staleAfter:    staleAfter,
	}
}

func (s *dashboardService) GetSummary(ctx context.Context, actorUserID string) (*domain.DashboardSummary, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}

	byStatus, err := s.dashboardRepo.CountOpenWorkItemsByStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count open work items")
		return nil, err
	}
	stale, err := s.dashboardRepo.CountStaleOnHold(ctx, s.Now().Add(-s.staleAfter))
	if err != nil {
		s.LogError(ctx, err, "Failed to count stale on-hold work items")
		return nil, err
	}
	pending, err := s.dashboardRepo.CountPendingUpdates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pending updates")
		return nil, err
	}

	summary := &domain.DashboardSummary{
		OpenByStatus:   make(map[domain.WorkItemStatus]int, len(domain.AllWorkItemStatuses)),
		StaleOnHold:    stale,
		PendingUpdates: pending,
	}
	for _, status := range domain.AllWorkItemStatuses {
		n := byStatus[status]
		summary.OpenByStatus[status] = n
		summary.TotalOpen += n
	}
	return summary, nil
}

var (
	_ portssvc.AuditSvc        = (*auditService)(nil)
	_ portssvc.NotificationSvc = (*notificationService)(nil)
	_ portssvc.DashboardSvc    = (*dashboardService)(nil)
)
