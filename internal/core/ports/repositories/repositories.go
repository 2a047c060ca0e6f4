package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	WorkItemRepo     WorkItemRepositoryWithTx
	UpdateRepo       WorkItemUpdateRepositoryFacade
	HistoryRepo      StatusHistoryRepositoryFacade
	OrderRepo        OrderRepositoryFacade
	CustomerRepo     CustomerRepository
	ProductRepo      ProductRepository
	WorkshopRepo     WorkshopRepository
	AttachmentRepo   AttachmentRepository
	AuditRepo        AuditLogRepository
	NotificationRepo NotificationRepository
	DashboardRepo    DashboardRepository
}
