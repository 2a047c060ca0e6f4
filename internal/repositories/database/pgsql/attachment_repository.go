package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttachmentRepository struct {
	BaseRepository
}

func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepository {
	return &PgxAttachmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttachmentRepository = (*PgxAttachmentRepository)(nil)

const FULL_ATTACHMENT_SELECT_QUERY = `
SELECT
	a.attachment_id, a.entity_type, a.entity_id, a.uploader_user_id, a.storage_path, a.original_filename,
	a.mime_type, a.size_bytes, a.deleted_at, a.deleted_by, a.delete_reason, a.created_at
FROM attachments a
`

func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	query := `
		INSERT INTO attachments (
			attachment_id, entity_type, entity_id, uploader_user_id, storage_path,
			original_filename, mime_type, size_bytes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		attachment.AttachmentID,
		string(attachment.EntityType),
		attachment.EntityID,
		attachment.UploaderUserID,
		attachment.StoragePath,
		attachment.OriginalFilename,
		attachment.MimeType,
		attachment.SizeBytes,
		attachment.CreatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewDuplicateError("attachment path " + attachment.StoragePath + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save attachment", err)
	}
	return nil
}

func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	return findOne[domain.Attachment](ctx, r.Pool, FULL_ATTACHMENT_SELECT_QUERY+`WHERE a.attachment_id = $1`, attachmentID)
}

func (r *PgxAttachmentRepository) ListAttachmentsByEntity(ctx context.Context, entityType domain.AttachmentEntityType, entityID string) ([]domain.Attachment, error) {
	return findMany[domain.Attachment](ctx, r.Pool,
		FULL_ATTACHMENT_SELECT_QUERY+`WHERE a.entity_type = $1 AND a.entity_id = $2 AND a.deleted_at IS NULL ORDER BY a.created_at DESC`,
		string(entityType), entityID)
}

func (r *PgxAttachmentRepository) MarkAttachmentDeleted(ctx context.Context, attachmentID string, deletedBy string, reason *string, now time.Time) error {
	query := `
		UPDATE attachments
		SET deleted_at = $1, deleted_by = $2, delete_reason = $3
		WHERE attachment_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, deletedBy, reason, attachmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attachment %s not found or already deleted: %w", attachmentID, apperrors.ErrNotFound)
	}
	return nil
}
