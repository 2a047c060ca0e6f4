package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
	workItems *PgxWorkItemRepository
}

// newPgxOrderRepository creates a repository for orders, their items and the work item graph beneath them.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
		workItems:      &PgxWorkItemRepository{BaseRepository: BaseRepository{Pool: pool}},
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const FULL_ORDER_SELECT_QUERY = `
SELECT o.order_id, o.order_number, o.customer_id, o.project_name, o.notes, o.created_at, o.created_by, o.updated_at
FROM orders o
`

const insertOrderQuery = `
	INSERT INTO orders (order_id, order_number, customer_id, project_name, notes, created_at, created_by, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

const insertOrderItemQuery = `
	INSERT INTO order_items (order_item_id, order_id, product_id, quantity, note, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

func orderArgs(o domain.Order) []any {
	return []any{o.OrderID, o.OrderNumber, o.CustomerID, o.ProjectName, o.Notes, o.CreatedAt, o.CreatedBy, o.LastUpdatedAt}
}

func orderItemArgs(i domain.OrderItem) []any {
	return []any{i.OrderItemID, i.OrderID, i.ProductID, i.Quantity, i.Note, i.CreatedAt, i.UpdatedAt}
}

func mapOrderWriteError(err error, what string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return apperrors.NewDuplicateError(what + " already exists")
	case pgForeignKeyViolation:
		return apperrors.NewValidationFailedError(what + " references a missing record")
	case pgStringTooLong:
		return apperrors.NewValidationFailedError(what + " has a value too long to store")
	}
	return apperrors.NewAppError(500, "failed to save "+what, err)
}

func (r *PgxOrderRepository) getOrders(ctx context.Context, filterQuery string, args ...any) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, FULL_ORDER_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query orders", err)
	}
	defer rows.Close()
	orders, err := collect[domain.Order](rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect order rows", err)
	}
	return orders, nil
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	if _, err := r.Pool.Exec(ctx, insertOrderQuery, orderArgs(order)...); err != nil {
		return mapOrderWriteError(err, "order "+order.OrderNumber)
	}
	return nil
}

func (r *PgxOrderRepository) SaveOrderItem(ctx context.Context, item domain.OrderItem) error {
	if _, err := r.Pool.Exec(ctx, insertOrderItemQuery, orderItemArgs(item)...); err != nil {
		return mapOrderWriteError(err, "order item "+item.OrderItemID)
	}
	return nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := r.getOrders(ctx, `WHERE o.order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &orders[0], nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context, limit int, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.getOrders(ctx, `ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// FindOrderGraph loads the order, its items and every work item with its steps.
func (r *PgxOrderRepository) FindOrderGraph(ctx context.Context, orderID string) (*domain.OrderGraph, error) {
	order, err := r.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	itemRows, err := r.Pool.Query(ctx, `
		SELECT order_item_id, order_id, product_id, quantity, note, created_at, updated_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at, order_item_id;`, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query order items", err)
	}
	items, err := collect[domain.OrderItem](itemRows)
	itemRows.Close()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect order item rows", err)
	}

	workItems, err := r.workItems.getWorkItems(ctx, r.Pool, `WHERE wi.order_id = $1 ORDER BY wi.created_at, wi.work_item_id`, orderID)
	if err != nil {
		return nil, err
	}

	stepRows, err := r.Pool.Query(ctx, `
		SELECT ps.process_step_id, ps.work_item_id, ps.step_order, ps.name, ps.status, ps.updated_at
		FROM process_steps ps
		JOIN work_items wi ON wi.work_item_id = ps.work_item_id
		WHERE wi.order_id = $1
		ORDER BY ps.work_item_id, ps.step_order;`, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query process steps", err)
	}
	steps, err := collect[domain.ProcessStep](stepRows)
	stepRows.Close()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect process step rows", err)
	}

	stepsByItem := make(map[string][]domain.ProcessStep, len(workItems))
	for _, step := range steps {
		stepsByItem[step.WorkItemID] = append(stepsByItem[step.WorkItemID], step)
	}

	graph := &domain.OrderGraph{
		Order:     *order,
		Items:     items,
		WorkItems: make([]domain.WorkItemWithSteps, 0, len(workItems)),
	}
	for _, wi := range workItems {
		itemSteps := stepsByItem[wi.WorkItemID]
		if itemSteps == nil {
			itemSteps = []domain.ProcessStep{}
		}
		graph.WorkItems = append(graph.WorkItems, domain.WorkItemWithSteps{WorkItem: wi, Steps: itemSteps})
	}
	return graph, nil
}

// SaveOrderGraph writes the whole graph in one transaction: either every row lands or none does.
func (r *PgxOrderRepository) SaveOrderGraph(ctx context.Context, graph domain.OrderGraph) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	batch.Queue(insertOrderQuery, orderArgs(graph.Order)...)
	for _, item := range graph.Items {
		batch.Queue(insertOrderItemQuery, orderItemArgs(item)...)
	}
	for _, wi := range graph.WorkItems {
		queueWorkItemInsert(batch, wi.WorkItem)
		for _, step := range wi.Steps {
			queueProcessStepInsert(batch, step)
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapOrderWriteError(err, fmt.Sprintf("order graph %s", graph.Order.OrderNumber))
	}

	return r.Commit(ctx, tx)
}
