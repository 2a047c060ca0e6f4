package domain

import "time"

// WorkItemStatus is the lifecycle status of a work item.
type WorkItemStatus string

const (
	StatusNew        WorkItemStatus = "NEW"
	StatusAssigned   WorkItemStatus = "ASSIGNED"
	StatusInProgress WorkItemStatus = "IN_PROGRESS"
	StatusOnHold     WorkItemStatus = "ON_HOLD"
	StatusDone       WorkItemStatus = "DONE"
	StatusCancelled  WorkItemStatus = "CANCELLED"
)

// AllWorkItemStatuses lists the statuses in lifecycle order.
var AllWorkItemStatuses = []WorkItemStatus{
	StatusNew, StatusAssigned, StatusInProgress, StatusOnHold, StatusDone, StatusCancelled,
}

// IsValid reports whether s is a known status.
func (s WorkItemStatus) IsValid() bool {
	for _, known := range AllWorkItemStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether reaching s archives the work item.
func (s WorkItemStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

const (
	MinProgressStep = 0
	MaxProgressStep = 10
)

// ValidProgressStep reports whether step is within the 0..10 (10% per step) range.
func ValidProgressStep(step int) bool {
	return step >= MinProgressStep && step <= MaxProgressStep
}

// WorkItem is one unit of work assigned to a workshop under an order.
type WorkItem struct {
	WorkItemID          string         `json:"workItemID"`
	OrderID             string         `json:"orderID"`
	WorkshopID          string         `json:"workshopID"`
	AssignedPersonnelID *string        `json:"assignedPersonnelID,omitempty"`
	Title               *string        `json:"title,omitempty"`
	Description         *string        `json:"description,omitempty"`
	CurrentStatus       WorkItemStatus `json:"currentStatus"`
	ProgressStep        int            `json:"progressStep"`
	ArchivedAt          *time.Time     `json:"archivedAt,omitempty"`
	UpdatedBy           *string        `json:"updatedBy,omitempty"`
	AuditFields
}

// NewWorkItem builds a work item in its initial lifecycle state.
func NewWorkItem(id, orderID, workshopID string, title, description *string, createdBy string, now time.Time) WorkItem {
	return WorkItem{
		WorkItemID:    id,
		OrderID:       orderID,
		WorkshopID:    workshopID,
		Title:         title,
		Description:   description,
		CurrentStatus: StatusNew,
		ProgressStep:  MinProgressStep,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
		},
	}
}

// ProcessStepStatus is the state of one checklist step.
type ProcessStepStatus string

const (
	StepPending ProcessStepStatus = "PENDING"
	StepActive  ProcessStepStatus = "ACTIVE"
	StepDone    ProcessStepStatus = "DONE"
)

// ProcessStep is one ordered task within a work item's completion checklist.
type ProcessStep struct {
	ProcessStepID string            `json:"processStepID" db:"process_step_id"`
	WorkItemID    string            `json:"workItemID" db:"work_item_id"`
	StepOrder     int               `json:"stepOrder" db:"step_order"`
	Name          string            `json:"name" db:"name"`
	Status        ProcessStepStatus `json:"status" db:"status"`
	UpdatedAt     time.Time         `json:"updatedAt" db:"updated_at"`
}

// WorkItemFilter narrows work item listings. Empty fields are ignored.
type WorkItemFilter struct {
	Status          *WorkItemStatus
	WorkshopID      *string
	OrderID         *string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// TransitionResult is the outcome of a status change request: either a committed
// work item or a pending proposal awaiting review.
type TransitionResult struct {
	Pending  bool            `json:"pending"`
	WorkItem *WorkItem       `json:"workItem,omitempty"`
	Update   *WorkItemUpdate `json:"update,omitempty"`
}
