package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// --- audit log ---

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

// SaveAuditEntry stores before/after snapshots as jsonb.
func (r *PgxAuditLogRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (audit_id, actor_user_id, action, entity_type, entity_id, before, after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditID,
		entry.ActorUserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Before,
		entry.After,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save audit entry", err)
	}
	return nil
}

func (r *PgxAuditLogRepository) ListAuditEntries(ctx context.Context, entityType *string, limit int, offset int) ([]domain.AuditLogEntry, error) {
	limit, offset = pageArgs(limit, offset)
	query := `
		SELECT audit_id, actor_user_id, action, entity_type, entity_id, before, after, created_at
		FROM audit_log
		WHERE ($1::text IS NULL OR entity_type = $1)
		ORDER BY created_at DESC, audit_id DESC
		LIMIT $2 OFFSET $3;
	`
	return findMany[domain.AuditLogEntry](ctx, r.Pool, query, entityType, limit, offset)
}

// --- notifications ---

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

// SaveNotifications inserts one row per recipient in a single batch.
func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	query := `
		INSERT INTO notifications (notification_id, recipient_user_id, type, entity_type, entity_id, payload, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, n := range notifications {
		batch.Queue(query, n.NotificationID, n.RecipientUserID, n.Type, n.EntityType, n.EntityID, n.Payload, n.IsRead, n.CreatedAt)
	}
	if err := r.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to save notifications", err)
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT notification_id, recipient_user_id, type, entity_type, entity_id, payload, is_read, created_at
		FROM notifications
		WHERE recipient_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	return findMany[domain.Notification](ctx, r.Pool, query, userID, limit)
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND recipient_user_id = $2`,
		notificationID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification read", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, apperrors.ErrNotFound)
	}
	return nil
}

// --- dashboard ---

type PgxDashboardRepository struct {
	BaseRepository
}

func newPgxDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) CountOpenWorkItemsByStatus(ctx context.Context) (map[domain.WorkItemStatus]int, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT current_status, COUNT(*)
		FROM work_items
		WHERE archived_at IS NULL
		GROUP BY current_status;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count work items", err)
	}
	defer rows.Close()

	counts := make(map[domain.WorkItemStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[domain.WorkItemStatus(status)] = count
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", rows.Err())
	}
	return counts, nil
}

func (r *PgxDashboardRepository) CountStaleOnHold(ctx context.Context, notUpdatedSince time.Time) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM work_items WHERE current_status = 'ON_HOLD' AND updated_at < $1`,
		notUpdatedSince).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count stale on-hold work items", err)
	}
	return count, nil
}

func (r *PgxDashboardRepository) CountPendingUpdates(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM work_item_updates WHERE state = 'PENDING'`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count pending updates", err)
	}
	return count, nil
}
