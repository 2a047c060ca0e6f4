package services

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/dto"
)

// ApprovalSvcFacade defines the review operations for proposals
type ApprovalSvcFacade interface {
	// ResolveUpdate approves or rejects a pending proposal. It returns the updated work
	// item when approved and nil when rejected.
	ResolveUpdate(ctx context.Context, updateID string, reviewerUserID string, req dto.ResolveUpdateRequest) (*domain.WorkItem, error)

	// ListPendingUpdates lists the proposals of a work item that await review.
	ListPendingUpdates(ctx context.Context, actorUserID string, workItemID string) ([]domain.WorkItemUpdate, error)

	// ListUpdates lists proposals of a work item, optionally filtered by state.
	ListUpdates(ctx context.Context, actorUserID string, workItemID string, state *domain.UpdateState) ([]domain.WorkItemUpdate, error)
}
