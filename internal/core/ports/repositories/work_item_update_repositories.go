package repositories

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// WorkItemUpdateReader defines read operations for proposals
type WorkItemUpdateReader interface {
	FindUpdateByID(ctx context.Context, updateID string) (*domain.WorkItemUpdate, error)

	// ListUpdatesByWorkItem retrieves proposals for a work item, newest first.
	// A nil state returns every proposal.
	ListUpdatesByWorkItem(ctx context.Context, workItemID string, state *domain.UpdateState) ([]domain.WorkItemUpdate, error)
}

// WorkItemUpdateWriter defines write operations for proposals
type WorkItemUpdateWriter interface {
	SaveUpdate(ctx context.Context, update domain.WorkItemUpdate) error
}

// WorkItemUpdateTransactionSupport defines proposal operations that run inside a transaction
type WorkItemUpdateTransactionSupport interface {
	// FindUpdateByIDForUpdate selects a proposal and locks its row.
	FindUpdateByIDForUpdate(ctx context.Context, tx pgx.Tx, updateID string) (*domain.WorkItemUpdate, error)

	// ResolveUpdateInTx writes the resolution fields of a proposal.
	ResolveUpdateInTx(ctx context.Context, tx pgx.Tx, updateID string, resolution domain.Resolution) error
}

// WorkItemUpdateRepositoryFacade combines all proposal repository interfaces
type WorkItemUpdateRepositoryFacade interface {
	WorkItemUpdateReader
	WorkItemUpdateWriter
	WorkItemUpdateTransactionSupport
}
