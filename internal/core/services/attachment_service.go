package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/google/uuid"
)

const (
	entityAttachment   = "attachment"
	defaultMimeType    = "application/octet-stream"
	defaultURLLifetime = time.Hour
)

type attachmentService struct {
	BaseService
	attachmentRepo portsrepo.AttachmentRepository
	blobs          portsrepo.BlobStore
	orders         portsrepo.OrderReader
	workItems      portsrepo.WorkItemReader
	urlTTL         time.Duration
}

// NewAttachmentService creates a new AttachmentService. Order and work item readers are used
// to check that the owning entity exists; ttl bounds the lifetime of download URLs.
func NewAttachmentService(
	access portssvc.CapabilityResolver,
	attachmentRepo portsrepo.AttachmentRepository,
	blobs portsrepo.BlobStore,
	orders portsrepo.OrderReader,
	workItems portsrepo.WorkItemReader,
	ttl time.Duration,
	options ...ServiceOption,
) portssvc.AttachmentSvcFacade {
	if ttl <= 0 {
		ttl = defaultURLLifetime
	}
	return &attachmentService{
		BaseService:    newBaseService(access, options),
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		orders:         orders,
		workItems:      workItems,
		urlTTL:         ttl,
	}
}

var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

func (s *attachmentService) ensureEntityExists(ctx context.Context, entityType domain.AttachmentEntityType, entityID string) error {
	var err error
	switch entityType {
	case domain.AttachmentOnOrder:
		_, err = s.orders.FindOrderByID(ctx, entityID)
	case domain.AttachmentOnWorkItem:
		_, err = s.workItems.FindWorkItemByID(ctx, entityID)
	case domain.AttachmentOnComment:
		// comments are owned by an external collaborator
	default:
		err = apperrors.NewValidationFailedError(fmt.Sprintf("unknown entity type %q", entityType))
	}
	return err
}

func (s *attachmentService) UploadAttachment(ctx context.Context, actorUserID string, upload dto.AttachmentUpload) (*domain.Attachment, error) {
	actor, err := s.Access.ResolveActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(upload.EntityID) == "" || strings.TrimSpace(upload.Filename) == "" {
		return nil, apperrors.NewValidationFailedError("entityID and filename are required")
	}
	if upload.SizeBytes <= 0 || upload.Body == nil {
		return nil, apperrors.NewValidationFailedError("file is empty")
	}
	if err := s.ensureEntityExists(ctx, upload.EntityType, upload.EntityID); err != nil {
		return nil, err
	}

	mimeType := upload.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	now := s.Now()
	attachment := domain.Attachment{
		AttachmentID:     uuid.NewString(),
		EntityType:       upload.EntityType,
		EntityID:         upload.EntityID,
		UploaderUserID:   actor.UserID,
		StoragePath:      domain.AttachmentStoragePath(upload.EntityType, upload.EntityID, upload.Filename, now),
		OriginalFilename: upload.Filename,
		MimeType:         mimeType,
		SizeBytes:        upload.SizeBytes,
		CreatedAt:        now,
	}

	if err := s.blobs.Put(ctx, attachment.StoragePath, mimeType, upload.SizeBytes, upload.Body); err != nil {
		s.LogError(ctx, err, "Failed to store attachment blob", slog.String("storage_path", attachment.StoragePath))
		return nil, err
	}
	if err := s.attachmentRepo.SaveAttachment(ctx, attachment); err != nil {
		s.LogError(ctx, err, "Failed to save attachment metadata", slog.String("storage_path", attachment.StoragePath))
		if delErr := s.blobs.Delete(ctx, attachment.StoragePath); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove orphaned blob", slog.String("storage_path", attachment.StoragePath))
		}
		return nil, err
	}

	s.Publish(ctx, domain.Event{
		Type:       domain.EventAttachmentUploaded,
		ActorID:    actor.UserID,
		EntityType: entityAttachment,
		EntityID:   attachment.AttachmentID,
		After:      attachment,
	})
	return &attachment, nil
}

func (s *attachmentService) ListAttachments(ctx context.Context, actorUserID string, entityType domain.AttachmentEntityType, entityID string) ([]domain.Attachment, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	if !entityType.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown entity type %q", entityType))
	}
	return s.attachmentRepo.ListAttachmentsByEntity(ctx, entityType, entityID)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, actorUserID string, attachmentID string) (string, time.Time, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return "", time.Time{}, err
	}
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return "", time.Time{}, err
	}
	if attachment.DeletedAt != nil {
		return "", time.Time{}, apperrors.NewNotFoundError("attachment " + attachmentID + " was deleted")
	}
	expiresAt := s.Now().Add(s.urlTTL)
	url, err := s.blobs.SignedURL(ctx, attachment.StoragePath, s.urlTTL)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign attachment URL", slog.String("attachment_id", attachmentID))
		return "", time.Time{}, err
	}
	return url, expiresAt, nil
}

func (s *attachmentService) DeleteAttachment(ctx context.Context, actorUserID string, attachmentID string, reason *string) error {
	actor, err := s.require(ctx, actorUserID, domain.CapDeleteAttachment)
	if err != nil {
		return err
	}
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if attachment.DeletedAt != nil {
		return apperrors.NewNotFoundError("attachment " + attachmentID + " was already deleted")
	}

	now := s.Now()
	if err := s.attachmentRepo.MarkAttachmentDeleted(ctx, attachmentID, actor.UserID, reason, now); err != nil {
		s.LogError(ctx, err, "Failed to mark attachment deleted", slog.String("attachment_id", attachmentID))
		return err
	}

	// Only admins purge the stored bytes.
	if actor.Role == domain.RoleAdmin {
		if err := s.blobs.Delete(ctx, attachment.StoragePath); err != nil {
			s.LogError(ctx, err, "Failed to delete attachment blob", slog.String("storage_path", attachment.StoragePath))
			return err
		}
	}

	deletedBy := actor.UserID
	after := *attachment
	after.DeletedAt = &now
	after.DeletedBy = &deletedBy
	after.DeleteReason = reason
	s.Publish(ctx, domain.Event{
		Type:       domain.EventAttachmentDeleted,
		ActorID:    actor.UserID,
		EntityType: entityAttachment,
		EntityID:   attachmentID,
		Before:     *attachment,
		After:      after,
	})
	return nil
}
