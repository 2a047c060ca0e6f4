package pgsql

import (
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		WorkItemRepo:     newPgxWorkItemRepository(dbPool),
		UpdateRepo:       newPgxWorkItemUpdateRepository(dbPool),
		HistoryRepo:      newPgxStatusHistoryRepository(dbPool),
		OrderRepo:        newPgxOrderRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		WorkshopRepo:     newPgxWorkshopRepository(dbPool),
		AttachmentRepo:   newPgxAttachmentRepository(dbPool),
		AuditRepo:        newPgxAuditLogRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		DashboardRepo:    newPgxDashboardRepository(dbPool),
	}
}
