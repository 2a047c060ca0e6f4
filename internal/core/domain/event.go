package domain

import "time"

// EventType identifies what happened in an Event.
type EventType string

const (
	EventWorkItemCreated      EventType = "work_item.created"
	EventWorkItemTransitioned EventType = "work_item.transitioned"
	EventUpdateRequested      EventType = "work_item_update.requested"
	EventUpdateApproved       EventType = "work_item_update.approved"
	EventUpdateRejected       EventType = "work_item_update.rejected"
	EventOrderCreated         EventType = "order.created"
	EventOrderCloned          EventType = "order.cloned"
	EventAttachmentUploaded   EventType = "attachment.uploaded"
	EventAttachmentDeleted    EventType = "attachment.deleted"
	EventUserCreated          EventType = "user.created"
	EventUserRoleChanged      EventType = "user.role_changed"
	EventUserDeleted          EventType = "user.deleted"
)

// Event is a fact published to the notification/audit sink after a commit.
type Event struct {
	Type       EventType
	ActorID    string
	EntityType string
	EntityID   string
	Before     any
	After      any
	// Recipients, when set, are users that should receive a notification.
	Recipients []string
	OccurredAt time.Time
}

// AuditLogEntry is one persisted audit record.
type AuditLogEntry struct {
	AuditID     string    `json:"auditID" db:"audit_id"`
	ActorUserID string    `json:"actorUserID" db:"actor_user_id"`
	Action      string    `json:"action" db:"action"`
	EntityType  string    `json:"entityType" db:"entity_type"`
	EntityID    string    `json:"entityID" db:"entity_id"`
	Before      any       `json:"before,omitempty" db:"before"`
	After       any       `json:"after,omitempty" db:"after"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Notification is a message for one recipient.
type Notification struct {
	NotificationID  string    `json:"notificationID" db:"notification_id"`
	RecipientUserID string    `json:"recipientUserID" db:"recipient_user_id"`
	Type            string    `json:"type" db:"type"`
	EntityType      string    `json:"entityType" db:"entity_type"`
	EntityID        string    `json:"entityID" db:"entity_id"`
	Payload         any       `json:"payload,omitempty" db:"payload"`
	IsRead          bool      `json:"isRead" db:"is_read"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
