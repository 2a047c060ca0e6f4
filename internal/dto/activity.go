package dto

import "github.com/SscSPs/workorder_tracker/internal/core/domain"

// ListAuditParams defines query parameters for the audit log.
type ListAuditParams struct {
	EntityType *string `form:"entityType"`
	Limit      int     `form:"limit,default=50"`
	Offset     int     `form:"offset,default=0"`
}

type ListAuditResponse struct {
	Entries []domain.AuditLogEntry `json:"entries"`
}

type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}
