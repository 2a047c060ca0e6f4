package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Access       CapabilityResolver
	User         UserSvcFacade
	Token        TokenSvcFacade
	WorkItem     WorkItemSvcFacade
	Approval     ApprovalSvcFacade
	Order        OrderSvcFacade
	Catalog      CatalogSvcFacade
	Attachment   AttachmentSvcFacade
	Audit        AuditSvc
	Notification NotificationSvc
	Dashboard    DashboardSvc
}
