package pgsql

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatusHistoryRepository struct {
	BaseRepository
}

func newPgxStatusHistoryRepository(pool *pgxpool.Pool) portsrepo.StatusHistoryRepositoryFacade {
	return &PgxStatusHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StatusHistoryRepositoryFacade = (*PgxStatusHistoryRepository)(nil)

func (r *PgxStatusHistoryRepository) ListHistoryByWorkItem(ctx context.Context, workItemID string) ([]domain.StatusHistoryEntry, error) {
	query := `
		SELECT history_id, work_item_id, actor_user_id, from_status, to_status,
		       from_progress_step, to_progress_step, note, created_at
		FROM status_history
		WHERE work_item_id = $1
		ORDER BY created_at, history_id;
	`
	rows, err := r.Pool.Query(ctx, query, workItemID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query status history", err)
	}
	defer rows.Close()
	entries, err := collect[domain.StatusHistoryEntry](rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect status history rows", err)
	}
	return entries, nil
}

func (r *PgxStatusHistoryRepository) AppendHistoryInTx(ctx context.Context, tx pgx.Tx, entry domain.StatusHistoryEntry) error {
	query := `
		INSERT INTO status_history (
			history_id, work_item_id, actor_user_id, from_status, to_status,
			from_progress_step, to_progress_step, note, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	var fromStatus *string
	if entry.FromStatus != nil {
		s := string(*entry.FromStatus)
		fromStatus = &s
	}
	_, err := tx.Exec(ctx, query,
		entry.HistoryID,
		entry.WorkItemID,
		entry.ActorUserID,
		fromStatus,
		string(entry.ToStatus),
		entry.FromProgressStep,
		entry.ToProgressStep,
		entry.Note,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append status history for work item "+entry.WorkItemID, err)
	}
	return nil
}
