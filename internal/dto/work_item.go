package dto

import (
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// CreateWorkItemRequest defines the data needed to create a work item.
// Steps, when given, become the ordered process steps of the new item.
type CreateWorkItemRequest struct {
	OrderID     string   `json:"orderID" binding:"required"`
	WorkshopID  string   `json:"workshopID" binding:"required"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Steps       []string `json:"steps" binding:"omitempty,dive,required"`
}

// TransitionRequest asks for a status/progress change on a work item.
type TransitionRequest struct {
	Status       domain.WorkItemStatus `json:"status" binding:"required,workstatus"`
	ProgressStep *int                  `json:"progressStep" binding:"required,progressstep"`
	Note         *string               `json:"note"`
}

// TransitionResponse is returned by the transition endpoint.
type TransitionResponse struct {
	Pending  bool                   `json:"pending"`
	WorkItem *domain.WorkItem       `json:"workItem,omitempty"`
	Update   *domain.WorkItemUpdate `json:"update,omitempty"`
}

// ToTransitionResponse converts a domain.TransitionResult to its response DTO
func ToTransitionResponse(result *domain.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Pending:  result.Pending,
		WorkItem: result.WorkItem,
		Update:   result.Update,
	}
}

// ResolveUpdateRequest approves or rejects a pending proposal.
type ResolveUpdateRequest struct {
	Approved   *bool   `json:"approved" binding:"required"`
	ReviewNote *string `json:"reviewNote"`
}

// ListWorkItemsParams defines query parameters for listing work items.
type ListWorkItemsParams struct {
	Status          string `form:"status" binding:"omitempty,workstatus"`
	WorkshopID      string `form:"workshopID"`
	OrderID         string `form:"orderID"`
	IncludeArchived bool   `form:"includeArchived"`
	Limit           int    `form:"limit,default=50"`
	Offset          int    `form:"offset,default=0"`
}

// ToFilter converts the query parameters to a repository filter.
func (p ListWorkItemsParams) ToFilter() domain.WorkItemFilter {
	filter := domain.WorkItemFilter{
		IncludeArchived: p.IncludeArchived,
		Limit:           p.Limit,
		Offset:          p.Offset,
	}
	if p.Status != "" {
		status := domain.WorkItemStatus(p.Status)
		filter.Status = &status
	}
	if p.WorkshopID != "" {
		filter.WorkshopID = &p.WorkshopID
	}
	if p.OrderID != "" {
		filter.OrderID = &p.OrderID
	}
	return filter
}

// ListWorkItemsResponse wraps a list of work items.
type ListWorkItemsResponse struct {
	WorkItems []domain.WorkItem `json:"workItems"`
}

// ListArchiveParams defines query parameters for the archive listing.
type ListArchiveParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListArchiveResponse wraps a page of archived work items.
type ListArchiveResponse struct {
	WorkItems []domain.WorkItem `json:"workItems"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// WorkItemDetailResponse is a work item with its process steps.
type WorkItemDetailResponse struct {
	WorkItem domain.WorkItem      `json:"workItem"`
	Steps    []domain.ProcessStep `json:"steps"`
}

// ListHistoryResponse wraps the status history of a work item.
type ListHistoryResponse struct {
	Entries []domain.StatusHistoryEntry `json:"entries"`
}

// ListUpdatesParams filters proposals by state.
type ListUpdatesParams struct {
	State string `form:"state" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// ListUpdatesResponse wraps proposals for a work item.
type ListUpdatesResponse struct {
	Updates []domain.WorkItemUpdate `json:"updates"`
}

// ResolveUpdateResponse holds the updated work item; it is nil for rejections.
type ResolveUpdateResponse struct {
	Approved bool             `json:"approved"`
	WorkItem *domain.WorkItem `json:"workItem,omitempty"`
}
