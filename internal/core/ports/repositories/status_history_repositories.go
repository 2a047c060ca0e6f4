package repositories

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// StatusHistoryReader reads the append-only transition ledger
type StatusHistoryReader interface {
	// ListHistoryByWorkItem returns entries oldest first.
	ListHistoryByWorkItem(ctx context.Context, workItemID string) ([]domain.StatusHistoryEntry, error)
}

// StatusHistoryAppender appends ledger entries. Entries are only written inside the
// transaction that mutates the work item.
type StatusHistoryAppender interface {
	AppendHistoryInTx(ctx context.Context, tx pgx.Tx, entry domain.StatusHistoryEntry) error
}

type StatusHistoryRepositoryFacade interface {
	StatusHistoryReader
	StatusHistoryAppender
}
