package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// AttachmentEntityType is the kind of entity an attachment hangs off.
type AttachmentEntityType string

const (
	AttachmentOnOrder    AttachmentEntityType = "order"
	AttachmentOnWorkItem AttachmentEntityType = "work_item"
	AttachmentOnComment  AttachmentEntityType = "comment"
)

func (t AttachmentEntityType) IsValid() bool {
	return t == AttachmentOnOrder || t == AttachmentOnWorkItem || t == AttachmentOnComment
}

// Attachment is the metadata row for a stored blob. Deleted attachments are kept
// with DeletedAt/DeletedBy/DeleteReason set.
type Attachment struct {
	AttachmentID     string               `json:"attachmentID" db:"attachment_id"`
	EntityType       AttachmentEntityType `json:"entityType" db:"entity_type"`
	EntityID         string               `json:"entityID" db:"entity_id"`
	UploaderUserID   string               `json:"uploaderUserID" db:"uploader_user_id"`
	StoragePath      string               `json:"storagePath" db:"storage_path"`
	OriginalFilename string               `json:"originalFilename" db:"original_filename"`
	MimeType         string               `json:"mimeType" db:"mime_type"`
	SizeBytes        int64                `json:"sizeBytes" db:"size_bytes"`
	DeletedAt        *time.Time           `json:"deletedAt,omitempty" db:"deleted_at"`
	DeletedBy        *string              `json:"deletedBy,omitempty" db:"deleted_by"`
	DeleteReason     *string              `json:"deleteReason,omitempty" db:"delete_reason"`
	CreatedAt        time.Time            `json:"createdAt" db:"created_at"`
}

// AttachmentStoragePath derives the blob key {entityType}/{entityID}/{unixMillis}.{ext}.
func AttachmentStoragePath(entityType AttachmentEntityType, entityID, filename string, at time.Time) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s/%d.%s", entityType, entityID, at.UnixMilli(), ext)
}
