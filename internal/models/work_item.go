package models

import "database/sql"

// WorkItemStatus mirrors the current_status column.
type WorkItemStatus string

// WorkItem is the work_items row.
type WorkItem struct {
	WorkItemID          string         `db:"work_item_id"`
	OrderID             string         `db:"order_id"`
	WorkshopID          string         `db:"workshop_id"`
	AssignedPersonnelID sql.NullString `db:"assigned_personnel_id"`
	Title               sql.NullString `db:"title"`
	Description         sql.NullString `db:"description"`
	CurrentStatus       WorkItemStatus `db:"current_status"`
	ProgressStep        int16          `db:"progress_step"`
	ArchivedAt          sql.NullTime   `db:"archived_at"`
	UpdatedBy           sql.NullString `db:"updated_by"`
	AuditFields
}
