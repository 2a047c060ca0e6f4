package domain

import "time"

// StatusHistoryEntry is the immutable record of one committed transition.
// ActorUserID is the user whose action caused the commit; for approved proposals
// that is the original requester.
type StatusHistoryEntry struct {
	HistoryID        string          `json:"historyID" db:"history_id"`
	WorkItemID       string          `json:"workItemID" db:"work_item_id"`
	ActorUserID      string          `json:"actorUserID" db:"actor_user_id"`
	FromStatus       *WorkItemStatus `json:"fromStatus,omitempty" db:"from_status"`
	ToStatus         WorkItemStatus  `json:"toStatus" db:"to_status"`
	FromProgressStep *int            `json:"fromProgressStep,omitempty" db:"from_progress_step"`
	ToProgressStep   *int            `json:"toProgressStep,omitempty" db:"to_progress_step"`
	Note             *string         `json:"note,omitempty" db:"note"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
}
