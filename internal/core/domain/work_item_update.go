package domain

import "time"

// UpdateState is the review state of a proposal.
type UpdateState string

const (
	UpdatePending  UpdateState = "PENDING"
	UpdateApproved UpdateState = "APPROVED"
	UpdateRejected UpdateState = "REJECTED"
)

// WorkItemUpdate is a restricted-role request to change a work item's status/progress.
// Reviewer fields stay nil while State is PENDING.
type WorkItemUpdate struct {
	UpdateID              string          `json:"updateID"`
	WorkItemID            string          `json:"workItemID"`
	RequestedByUserID     string          `json:"requestedByUserID"`
	RequestedStatus       *WorkItemStatus `json:"requestedStatus,omitempty"`
	RequestedProgressStep *int            `json:"requestedProgressStep,omitempty"`
	RequestedNote         *string         `json:"requestedNote,omitempty"`
	State                 UpdateState     `json:"state"`
	ReviewerUserID        *string         `json:"reviewerUserID,omitempty"`
	ReviewedAt            *time.Time      `json:"reviewedAt,omitempty"`
	ReviewNote            *string         `json:"reviewNote,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// IsResolved reports whether the proposal has been approved or rejected.
func (u WorkItemUpdate) IsResolved() bool {
	return u.State != UpdatePending
}

// Resolution holds the reviewer fields written when a proposal is decided.
type Resolution struct {
	State          UpdateState
	ReviewerUserID string
	ReviewedAt     time.Time
	ReviewNote     *string
}
