package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
)

const entityWorkItemUpdate = "work_item_update"

// approvalService implements the ApprovalSvcFacade interface
type approvalService struct {
	BaseService
	workItemRepo portsrepo.WorkItemRepositoryWithTx
	updateRepo   portsrepo.WorkItemUpdateRepositoryFacade
	writer       stateWriter
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(
	access portssvc.CapabilityResolver,
	workItemRepo portsrepo.WorkItemRepositoryWithTx,
	updateRepo portsrepo.WorkItemUpdateRepositoryFacade,
	historyRepo portsrepo.StatusHistoryAppender,
	options ...ServiceOption,
) portssvc.ApprovalSvcFacade {
	return &approvalService{
		BaseService:  newBaseService(access, options),
		workItemRepo: workItemRepo,
		updateRepo:   updateRepo,
		writer:       stateWriter{workItems: workItemRepo, history: historyRepo},
	}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

func (s *approvalService) ResolveUpdate(ctx context.Context, updateID string, reviewerUserID string, req dto.ResolveUpdateRequest) (*domain.WorkItem, error) {
	reviewer, err := s.require(ctx, reviewerUserID, domain.CapApproveUpdates)
	if err != nil {
		return nil, err
	}
	if req.Approved == nil {
		return nil, apperrors.NewValidationFailedError("approved is required")
	}
	approved := *req.Approved

	tx, err := s.workItemRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin resolution transaction")
		return nil, err
	}
	defer s.workItemRepo.Rollback(ctx, tx)

	update, err := s.updateRepo.FindUpdateByIDForUpdate(ctx, tx, updateID)
	if err != nil {
		return nil, err
	}
	if update.IsResolved() {
		s.LogDebug(ctx, "Update already resolved",
			slog.String("update_id", updateID),
			slog.String("state", string(update.State)))
		return nil, apperrors.NewConflictError("update has already been " + string(update.State))
	}

	now := s.Now()
	resolution := domain.Resolution{
		State:          domain.UpdateRejected,
		ReviewerUserID: reviewer.UserID,
		ReviewedAt:     now,
		ReviewNote:     req.ReviewNote,
	}

	var before, after domain.WorkItem
	if approved {
		resolution.State = domain.UpdateApproved
		before, after, err = s.writer.apply(ctx, tx, update.WorkItemID, stateChange{
			Status:       update.RequestedStatus,
			ProgressStep: update.RequestedProgressStep,
			HistoryActor: update.RequestedByUserID,
			UpdatedBy:    reviewer.UserID,
			Note:         update.RequestedNote,
			At:           now,
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to apply approved update",
				slog.String("update_id", updateID),
				slog.String("work_item_id", update.WorkItemID))
			return nil, err
		}
	}

	if err := s.updateRepo.ResolveUpdateInTx(ctx, tx, updateID, resolution); err != nil {
		s.LogError(ctx, err, "Failed to record resolution", slog.String("update_id", updateID))
		return nil, err
	}
	if err := s.workItemRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit resolution", slog.String("update_id", updateID))
		return nil, err
	}

	resolved := *update
	resolved.State = resolution.State
	resolved.ReviewerUserID = &resolution.ReviewerUserID
	resolved.ReviewedAt = &now
	resolved.ReviewNote = resolution.ReviewNote
	resolved.UpdatedAt = now

	eventType := domain.EventUpdateRejected
	decision := "rejected"
	if approved {
		eventType = domain.EventUpdateApproved
		decision = "approved"
	}
	s.Metrics.RecordResolution(decision)
	s.LogInfo(ctx, "Update resolved",
		slog.String("update_id", updateID),
		slog.String("decision", decision))
	s.Publish(ctx, domain.Event{
		Type:       eventType,
		ActorID:    reviewer.UserID,
		EntityType: entityWorkItemUpdate,
		EntityID:   updateID,
		Before:     *update,
		After:      resolved,
		Recipients: []string{update.RequestedByUserID},
	})

	if !approved {
		return nil, nil
	}
	s.Publish(ctx, domain.Event{
		Type:       domain.EventWorkItemTransitioned,
		ActorID:    update.RequestedByUserID,
		EntityType: entityWorkItem,
		EntityID:   update.WorkItemID,
		Before:     before,
		After:      after,
	})
	return &after, nil
}

func (s *approvalService) ListPendingUpdates(ctx context.Context, actorUserID string, workItemID string) ([]domain.WorkItemUpdate, error) {
	pending := domain.UpdatePending
	return s.ListUpdates(ctx, actorUserID, workItemID, &pending)
}

func (s *approvalService) ListUpdates(ctx context.Context, actorUserID string, workItemID string, state *domain.UpdateState) ([]domain.WorkItemUpdate, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	if _, err := s.workItemRepo.FindWorkItemByID(ctx, workItemID); err != nil {
		return nil, err
	}
	return s.updateRepo.ListUpdatesByWorkItem(ctx, workItemID, state)
}
