package services

import (
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/platform/config"
	"github.com/SscSPs/workorder_tracker/internal/platform/observability"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	blobs portsrepo.BlobStore,
	sink portssvc.EventSink,
	metrics *observability.Metrics,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Every other service checks capabilities through the resolver
	container.Access = NewAccessService(repos.UserRepo)
	access := container.Access

	opts := []ServiceOption{WithEventSink(sink), WithMetrics(metrics)}

	container.User = NewUserService(access, repos.UserRepo, opts...)
	container.Token = NewTokenService(cfg)
	container.WorkItem = NewWorkItemService(access, repos.WorkItemRepo, repos.UpdateRepo, repos.HistoryRepo, opts...)
	container.Approval = NewApprovalService(access, repos.WorkItemRepo, repos.UpdateRepo, repos.HistoryRepo, opts...)
	container.Order = NewOrderService(access, repos.OrderRepo, repos.CustomerRepo, repos.ProductRepo, opts...)
	container.Catalog = NewCatalogService(access, repos.CustomerRepo, repos.ProductRepo, repos.WorkshopRepo, opts...)
	container.Attachment = NewAttachmentService(access, repos.AttachmentRepo, blobs, repos.OrderRepo, repos.WorkItemRepo, cfg.AttachmentURLTTL, opts...)
	container.Audit = NewAuditService(access, repos.AuditRepo)
	container.Notification = NewNotificationService(access, repos.NotificationRepo)
	container.Dashboard = NewDashboardService(access, repos.DashboardRepo, cfg.StaleOnHoldAfter)

	return container
}
