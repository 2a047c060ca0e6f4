package repositories

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// AttachmentRepository persists attachment metadata. Blobs live in a BlobStore.
type AttachmentRepository interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error

	// FindAttachmentByID returns the attachment, including soft-deleted ones.
	FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)

	// ListAttachmentsByEntity returns non-deleted attachments, newest first.
	ListAttachmentsByEntity(ctx context.Context, entityType domain.AttachmentEntityType, entityID string) ([]domain.Attachment, error)

	// MarkAttachmentDeleted soft deletes an attachment. Returns apperrors.ErrNotFound if
	// the attachment does not exist or is already deleted.
	MarkAttachmentDeleted(ctx context.Context, attachmentID string, deletedBy string, reason *string, now time.Time) error
}

// BlobStore stores attachment bytes keyed by storage path.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, size int64, body io.Reader) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
