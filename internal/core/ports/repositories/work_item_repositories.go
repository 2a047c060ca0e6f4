package repositories

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// WorkItemReader defines read operations for work items and their process steps
type WorkItemReader interface {
	// FindWorkItemByID retrieves a work item by ID. Returns apperrors.ErrNotFound when missing.
	FindWorkItemByID(ctx context.Context, workItemID string) (*domain.WorkItem, error)

	// ListWorkItems retrieves work items matching the filter, newest first.
	ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]domain.WorkItem, error)

	// ListArchivedWorkItems retrieves archived work items, most recently archived first,
	// using a cursor token. Returns the next token or nil when there are no more rows.
	ListArchivedWorkItems(ctx context.Context, limit int, nextToken *string) ([]domain.WorkItem, *string, error)

	// FindProcessSteps retrieves a work item's steps ordered by step_order.
	FindProcessSteps(ctx context.Context, workItemID string) ([]domain.ProcessStep, error)
}

// WorkItemWriter defines write operations for work items
type WorkItemWriter interface {
	// SaveWorkItem inserts a work item together with its process steps in one transaction.
	SaveWorkItem(ctx context.Context, item domain.WorkItem, steps []domain.ProcessStep) error
}

// WorkItemTransactionSupport defines operations that run inside a caller-owned transaction
type WorkItemTransactionSupport interface {
	// FindWorkItemByIDForUpdate selects a work item and locks its row. Must be called within a transaction.
	FindWorkItemByIDForUpdate(ctx context.Context, tx pgx.Tx, workItemID string) (*domain.WorkItem, error)

	// UpdateWorkItemStateInTx writes status, progress, updated_by, updated_at and archived_at.
	UpdateWorkItemStateInTx(ctx context.Context, tx pgx.Tx, item domain.WorkItem) error
}

// WorkItemRepositoryFacade combines all work item repository interfaces
type WorkItemRepositoryFacade interface {
	WorkItemReader
	WorkItemWriter
	WorkItemTransactionSupport
}

// WorkItemRepositoryWithTx extends WorkItemRepositoryFacade with transaction capabilities
type WorkItemRepositoryWithTx interface {
	WorkItemRepositoryFacade
	TransactionManager
}
