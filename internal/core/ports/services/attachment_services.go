package services

import (
	"context"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/dto"
)

// AttachmentSvcFacade defines the attachment operations
type AttachmentSvcFacade interface {
	UploadAttachment(ctx context.Context, actorUserID string, upload dto.AttachmentUpload) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, actorUserID string, entityType domain.AttachmentEntityType, entityID string) ([]domain.Attachment, error)

	// GetDownloadURL returns a signed, time-limited URL for the blob.
	GetDownloadURL(ctx context.Context, actorUserID string, attachmentID string) (string, time.Time, error)

	// DeleteAttachment soft deletes the attachment; ADMIN also removes the blob.
	DeleteAttachment(ctx context.Context, actorUserID string, attachmentID string, reason *string) error
}
