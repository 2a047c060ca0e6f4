package services

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/dto"
)

// WorkItemReaderSvc defines read operations for work items
type WorkItemReaderSvc interface {
	GetWorkItem(ctx context.Context, actorUserID string, workItemID string) (*domain.WorkItemWithSteps, error)
	ListWorkItems(ctx context.Context, actorUserID string, filter domain.WorkItemFilter) ([]domain.WorkItem, error)
	ListArchivedWorkItems(ctx context.Context, actorUserID string, limit int, nextToken *string) ([]domain.WorkItem, *string, error)
	ListHistory(ctx context.Context, actorUserID string, workItemID string) ([]domain.StatusHistoryEntry, error)
}

// WorkItemLifecycleSvc defines the operations that drive a work item through its lifecycle
type WorkItemLifecycleSvc interface {
	// CreateWorkItem creates a work item in state NEW with progress 0.
	CreateWorkItem(ctx context.Context, actorUserID string, req dto.CreateWorkItemRequest) (*domain.WorkItem, error)

	// ApplyTransition commits a status/progress change for privileged roles, or stores a
	// pending proposal for roles that cannot manage work items.
	ApplyTransition(ctx context.Context, workItemID string, actorUserID string, req dto.TransitionRequest) (*domain.TransitionResult, error)
}

// WorkItemSvcFacade combines all work item service interfaces
type WorkItemSvcFacade interface {
	WorkItemReaderSvc
	WorkItemLifecycleSvc
}
