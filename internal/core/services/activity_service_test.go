package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboard_GetSummary(t *testing.T) {
	now := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	userRepo := new(MockUserRepository)
	givenActor(userRepo, "worker-1", domain.RolePersonnel)
	repo := new(MockDashboardRepository)
	repo.On("CountOpenWorkItemsByStatus", mock.Anything).Return(map[domain.WorkItemStatus]int{
		domain.StatusNew:        2,
		domain.StatusInProgress: 5,
		domain.StatusOnHold:     1,
	}, nil).Once()
	repo.On("CountStaleOnHold", mock.Anything, now.Add(-48*time.Hour)).Return(1, nil).Once()
	repo.On("CountPendingUpdates", mock.Anything).Return(3, nil).Once()

	svc := services.NewDashboardService(services.NewAccessService(userRepo), repo, 48*time.Hour, services.WithClock(fixedClock(now)))
	summary, err := svc.GetSummary(context.Background(), "worker-1")

	require.NoError(t, err)
	assert.Equal(t, 8, summary.TotalOpen)
	assert.Equal(t, 1, summary.StaleOnHold)
	assert.Equal(t, 3, summary.PendingUpdates)
	assert.Len(t, summary.OpenByStatus, len(domain.AllWorkItemStatuses))
	assert.Equal(t, 0, summary.OpenByStatus[domain.StatusAssigned])
	repo.AssertExpectations(t)
}

func TestAudit_ListRequiresViewAudit(t *testing.T) {
	userRepo := new(MockUserRepository)
	givenActor(userRepo, "mm-1", domain.RoleMiddleManager)
	givenActor(userRepo, "manager-1", domain.RoleManager)
	repo := new(MockAuditLogRepository)
	entries := []domain.AuditLogEntry{{AuditID: "a-1", Action: string(domain.EventOrderCloned)}}
	repo.On("ListAuditEntries", mock.Anything, (*string)(nil), 50, 0).Return(entries, nil).Once()

	svc := services.NewAuditService(services.NewAccessService(userRepo), repo)

	_, err := svc.ListAuditEntries(context.Background(), "mm-1", nil, 50, 0)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	empty := ""
	got, err := svc.ListAuditEntries(context.Background(), "manager-1", &empty, 0, -3)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	repo.AssertExpectations(t)
}

func TestNotifications_ScopedToCaller(t *testing.T) {
	userRepo := new(MockUserRepository)
	givenActor(userRepo, "worker-1", domain.RolePersonnel)
	repo := new(MockNotificationRepository)
	repo.On("ListNotificationsForUser", mock.Anything, "worker-1", 50).Return([]domain.Notification{}, nil).Once()
	repo.On("MarkNotificationRead", mock.Anything, "n-9", "worker-1").Return(apperrors.NewNotFoundError("notification n-9 not found")).Once()

	svc := services.NewNotificationService(services.NewAccessService(userRepo), repo)

	list, err := svc.ListNotifications(context.Background(), "worker-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	err = svc.MarkNotificationRead(context.Background(), "worker-1", "n-9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}
