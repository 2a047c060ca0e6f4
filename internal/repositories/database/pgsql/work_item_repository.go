package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/workorder_tracker/internal/models"
	"github.com/SscSPs/workorder_tracker/internal/utils/mapping"
	"github.com/SscSPs/workorder_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkItemRepository struct {
	BaseRepository
}

// newPgxWorkItemRepository creates a new repository for work items and their process steps.
func newPgxWorkItemRepository(pool *pgxpool.Pool) portsrepo.WorkItemRepositoryWithTx {
	return &PgxWorkItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWorkItemRepository implements portsrepo.WorkItemRepositoryWithTx
var _ portsrepo.WorkItemRepositoryWithTx = (*PgxWorkItemRepository)(nil)

const FULL_WORK_ITEM_SELECT_QUERY = `
SELECT
	wi.work_item_id, wi.order_id, wi.workshop_id, wi.assigned_personnel_id, wi.title, wi.description,
	wi.current_status, wi.progress_step, wi.archived_at, wi.updated_by,
	wi.created_at, wi.created_by, wi.updated_at
FROM work_items wi
`

const insertWorkItemQuery = `
	INSERT INTO work_items (
		work_item_id, order_id, workshop_id, assigned_personnel_id, title, description,
		current_status, progress_step, archived_at, created_at, created_by, updated_at, updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

const insertProcessStepQuery = `
	INSERT INTO process_steps (process_step_id, work_item_id, step_order, name, status, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6);
`

func queueWorkItemInsert(batch *pgx.Batch, item domain.WorkItem) {
	m := mapping.ToModelWorkItem(item)
	batch.Queue(insertWorkItemQuery,
		m.WorkItemID,
		m.OrderID,
		m.WorkshopID,
		m.AssignedPersonnelID,
		m.Title,
		m.Description,
		m.CurrentStatus,
		m.ProgressStep,
		m.ArchivedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.UpdatedBy,
	)
}

func queueProcessStepInsert(batch *pgx.Batch, step domain.ProcessStep) {
	batch.Queue(insertProcessStepQuery,
		step.ProcessStepID,
		step.WorkItemID,
		step.StepOrder,
		step.Name,
		step.Status,
		step.UpdatedAt,
	)
}

func (r *PgxWorkItemRepository) getWorkItems(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.WorkItem, error) {
	rows, err := q.Query(ctx, FULL_WORK_ITEM_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query work items", err)
	}
	defer rows.Close()
	modelItems, err := collect[models.WorkItem](rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect work item rows", err)
	}
	return mapping.ToDomainWorkItemSlice(modelItems), nil
}

// SaveWorkItem inserts the work item and its steps in a single transaction.
func (r *PgxWorkItemRepository) SaveWorkItem(ctx context.Context, item domain.WorkItem, steps []domain.ProcessStep) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	queueWorkItemInsert(batch, item)
	for _, step := range steps {
		queueProcessStepInsert(batch, step)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return apperrors.NewValidationFailedError("order or workshop does not exist")
		case pgUniqueViolation:
			return apperrors.NewDuplicateError("work item " + item.WorkItemID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to insert work item "+item.WorkItemID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkItemRepository) FindWorkItemByID(ctx context.Context, workItemID string) (*domain.WorkItem, error) {
	items, err := r.getWorkItems(ctx, r.Pool, `WHERE wi.work_item_id = $1`, workItemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

func (r *PgxWorkItemRepository) ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]domain.WorkItem, error) {
	conditions := []string{}
	args := []any{}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != nil {
		add("wi.current_status = $%d", string(*filter.Status))
	}
	if filter.WorkshopID != nil {
		add("wi.workshop_id = $%d", *filter.WorkshopID)
	}
	if filter.OrderID != nil {
		add("wi.order_id = $%d", *filter.OrderID)
	}
	if !filter.IncludeArchived {
		conditions = append(conditions, "wi.archived_at IS NULL")
	}

	var sb strings.Builder
	if len(conditions) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	limit := pagination.NormalizeLimit(filter.Limit, 50, 200)
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	fmt.Fprintf(&sb, " ORDER BY wi.created_at DESC, wi.work_item_id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.getWorkItems(ctx, r.Pool, sb.String(), args...)
}

// ListArchivedWorkItems pages archived items by (archived_at, work_item_id) descending.
func (r *PgxWorkItemRepository) ListArchivedWorkItems(ctx context.Context, limit int, nextToken *string) ([]domain.WorkItem, *string, error) {
	limit = pagination.NormalizeLimit(limit, 20, 100)

	filter := `WHERE wi.archived_at IS NOT NULL`
	args := []any{}
	if nextToken != nil && *nextToken != "" {
		archivedAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError(err.Error())
		}
		filter += ` AND (wi.archived_at, wi.work_item_id) < ($1, $2)`
		args = append(args, archivedAt, id)
	}
	args = append(args, limit+1)
	filter += fmt.Sprintf(` ORDER BY wi.archived_at DESC, wi.work_item_id DESC LIMIT $%d`, len(args))

	items, err := r.getWorkItems(ctx, r.Pool, filter, args...)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(items) > limit {
		items = items[:limit]
		last := items[limit-1]
		t := pagination.EncodeToken(*last.ArchivedAt, last.WorkItemID)
		token = &t
	}
	return items, token, nil
}

func (r *PgxWorkItemRepository) FindProcessSteps(ctx context.Context, workItemID string) ([]domain.ProcessStep, error) {
	query := `
		SELECT process_step_id, work_item_id, step_order, name, status, updated_at
		FROM process_steps
		WHERE work_item_id = $1
		ORDER BY step_order;
	`
	rows, err := r.Pool.Query(ctx, query, workItemID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query process steps", err)
	}
	defer rows.Close()
	steps, err := collect[domain.ProcessStep](rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect process step rows", err)
	}
	return steps, nil
}

// FindWorkItemByIDForUpdate locks the work item row until tx ends.
func (r *PgxWorkItemRepository) FindWorkItemByIDForUpdate(ctx context.Context, tx pgx.Tx, workItemID string) (*domain.WorkItem, error) {
	if tx == nil {
		return nil, errors.New("FindWorkItemByIDForUpdate requires a transaction")
	}
	items, err := r.getWorkItems(ctx, tx, `WHERE wi.work_item_id = $1 FOR UPDATE`, workItemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

// UpdateWorkItemStateInTx persists the lifecycle columns. archived_at is only ever set once.
func (r *PgxWorkItemRepository) UpdateWorkItemStateInTx(ctx context.Context, tx pgx.Tx, item domain.WorkItem) error {
	m := mapping.ToModelWorkItem(item)
	query := `
		UPDATE work_items
		SET current_status = $1, progress_step = $2, updated_by = $3, updated_at = $4,
		    archived_at = COALESCE(archived_at, $5)
		WHERE work_item_id = $6;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.CurrentStatus,
		m.ProgressStep,
		m.UpdatedBy,
		m.LastUpdatedAt,
		m.ArchivedAt,
		m.WorkItemID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update work item "+item.WorkItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("work item %s: %w", item.WorkItemID, apperrors.ErrNotFound)
	}
	return nil
}
