package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/workorder_tracker/internal/models"
	"github.com/SscSPs/workorder_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkItemUpdateRepository struct {
	BaseRepository
}

func newPgxWorkItemUpdateRepository(pool *pgxpool.Pool) portsrepo.WorkItemUpdateRepositoryFacade {
	return &PgxWorkItemUpdateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkItemUpdateRepositoryFacade = (*PgxWorkItemUpdateRepository)(nil)

const FULL_UPDATE_SELECT_QUERY = `
SELECT
	u.update_id, u.work_item_id, u.requested_by, u.requested_status, u.requested_progress_step,
	u.requested_note, u.state, u.reviewer_id, u.reviewed_at, u.review_note, u.created_at, u.updated_at
FROM work_item_updates u
`

func (r *PgxWorkItemUpdateRepository) getUpdates(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.WorkItemUpdate, error) {
	rows, err := q.Query(ctx, FULL_UPDATE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query work item updates", err)
	}
	defer rows.Close()
	modelUpdates, err := collect[models.WorkItemUpdate](rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect work item update rows", err)
	}
	return mapping.ToDomainWorkItemUpdateSlice(modelUpdates), nil
}

func (r *PgxWorkItemUpdateRepository) SaveUpdate(ctx context.Context, update domain.WorkItemUpdate) error {
	m := mapping.ToModelWorkItemUpdate(update)
	query := `
		INSERT INTO work_item_updates (
			update_id, work_item_id, requested_by, requested_status, requested_progress_step,
			requested_note, state, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UpdateID,
		m.WorkItemID,
		m.RequestedBy,
		m.RequestedStatus,
		m.RequestedProgressStep,
		m.RequestedNote,
		m.State,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewNotFoundError("work item " + update.WorkItemID + " not found")
		}
		return apperrors.NewAppError(500, "failed to save work item update "+update.UpdateID, err)
	}
	return nil
}

func (r *PgxWorkItemUpdateRepository) FindUpdateByID(ctx context.Context, updateID string) (*domain.WorkItemUpdate, error) {
	updates, err := r.getUpdates(ctx, r.Pool, `WHERE u.update_id = $1`, updateID)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &updates[0], nil
}

func (r *PgxWorkItemUpdateRepository) ListUpdatesByWorkItem(ctx context.Context, workItemID string, state *domain.UpdateState) ([]domain.WorkItemUpdate, error) {
	if state != nil {
		return r.getUpdates(ctx, r.Pool, `WHERE u.work_item_id = $1 AND u.state = $2 ORDER BY u.created_at DESC`, workItemID, string(*state))
	}
	return r.getUpdates(ctx, r.Pool, `WHERE u.work_item_id = $1 ORDER BY u.created_at DESC`, workItemID)
}

func (r *PgxWorkItemUpdateRepository) FindUpdateByIDForUpdate(ctx context.Context, tx pgx.Tx, updateID string) (*domain.WorkItemUpdate, error) {
	updates, err := r.getUpdates(ctx, tx, `WHERE u.update_id = $1 FOR UPDATE`, updateID)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &updates[0], nil
}

// ResolveUpdateInTx only touches rows still PENDING, so a concurrent resolution surfaces as ErrConflict.
func (r *PgxWorkItemUpdateRepository) ResolveUpdateInTx(ctx context.Context, tx pgx.Tx, updateID string, resolution domain.Resolution) error {
	query := `
		UPDATE work_item_updates
		SET state = $1, reviewer_id = $2, reviewed_at = $3, review_note = $4, updated_at = $3
		WHERE update_id = $5 AND state = 'PENDING';
	`
	cmdTag, err := tx.Exec(ctx, query,
		string(resolution.State),
		resolution.ReviewerUserID,
		resolution.ReviewedAt,
		resolution.ReviewNote,
		updateID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to resolve work item update "+updateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("update %s is not pending: %w", updateID, apperrors.ErrConflict)
	}
	return nil
}
