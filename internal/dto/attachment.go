package dto

import (
	"io"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// UploadAttachmentForm holds the multipart form fields of an upload.
type UploadAttachmentForm struct {
	EntityType string `form:"entityType" binding:"required,oneof=order work_item comment"`
	EntityID   string `form:"entityID" binding:"required"`
}

// AttachmentUpload is a decoded upload handed to the attachment service.
type AttachmentUpload struct {
	EntityType domain.AttachmentEntityType
	EntityID   string
	Filename   string
	MimeType   string
	SizeBytes  int64
	Body       io.Reader
}

// DeleteAttachmentRequest carries the optional reason for a deletion.
type DeleteAttachmentRequest struct {
	Reason *string `json:"reason"`
}

// ListAttachmentsParams selects the attachments of one entity.
type ListAttachmentsParams struct {
	EntityType string `form:"entityType" binding:"required,oneof=order work_item comment"`
	EntityID   string `form:"entityID" binding:"required"`
}

type ListAttachmentsResponse struct {
	Attachments []domain.Attachment `json:"attachments"`
}

// AttachmentURLResponse is a time-limited download link.
type AttachmentURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
