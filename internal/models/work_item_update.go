package models

import (
	"database/sql"
	"time"
)

// WorkItemUpdate is the work_item_updates row.
type WorkItemUpdate struct {
	UpdateID              string         `db:"update_id"`
	WorkItemID            string         `db:"work_item_id"`
	RequestedBy           string         `db:"requested_by"`
	RequestedStatus       sql.NullString `db:"requested_status"`
	RequestedProgressStep sql.NullInt16  `db:"requested_progress_step"`
	RequestedNote         sql.NullString `db:"requested_note"`
	State                 string         `db:"state"`
	ReviewerID            sql.NullString `db:"reviewer_id"`
	ReviewedAt            sql.NullTime   `db:"reviewed_at"`
	ReviewNote            sql.NullString `db:"review_note"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}
