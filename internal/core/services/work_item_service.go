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
	"github.com/jackc/pgx/v5"
)

const entityWorkItem = "work_item"

// stateChange describes a status/progress write on a locked work item. Nil fields keep
// the current value.
type stateChange struct {
	Status       *domain.WorkItemStatus
	ProgressStep *int
	HistoryActor string
	UpdatedBy    string
	Note         *string
	At           time.Time
}

// stateWriter applies a stateChange inside a caller-owned transaction and appends the
// matching history entry.
type stateWriter struct {
	workItems portsrepo.WorkItemTransactionSupport
	history   portsrepo.StatusHistoryAppender
}

func (w stateWriter) apply(ctx context.Context, tx pgx.Tx, workItemID string, change stateChange) (before domain.WorkItem, after domain.WorkItem, err error) {
	current, err := w.workItems.FindWorkItemByIDForUpdate(ctx, tx, workItemID)
	if err != nil {
		return before, after, err
	}
	before = *current
	after = *current

	if change.Status != nil {
		after.CurrentStatus = *change.Status
	}
	if change.ProgressStep != nil {
		after.ProgressStep = *change.ProgressStep
	}
	updatedBy := change.UpdatedBy
	after.UpdatedBy = &updatedBy
	after.LastUpdatedAt = change.At
	if after.CurrentStatus.IsTerminal() && after.ArchivedAt == nil {
		archivedAt := change.At
		after.ArchivedAt = &archivedAt
	}

	if err = w.workItems.UpdateWorkItemStateInTx(ctx, tx, after); err != nil {
		return before, after, err
	}

	fromStatus := before.CurrentStatus
	fromStep := before.ProgressStep
	toStep := after.ProgressStep
	entry := domain.StatusHistoryEntry{
		HistoryID:        uuid.NewString(),
		WorkItemID:       workItemID,
		ActorUserID:      change.HistoryActor,
		FromStatus:       &fromStatus,
		ToStatus:         after.CurrentStatus,
		FromProgressStep: &fromStep,
		ToProgressStep:   &toStep,
		Note:             change.Note,
		CreatedAt:        change.At,
	}
	if err = w.history.AppendHistoryInTx(ctx, tx, entry); err != nil {
		return before, after, err
	}
	return before, after, nil
}

// workItemService implements the WorkItemSvcFacade interface
type workItemService struct {
	BaseService
	workItemRepo portsrepo.WorkItemRepositoryWithTx
	updateRepo   portsrepo.WorkItemUpdateWriter
	historyRepo  portsrepo.StatusHistoryRepositoryFacade
	writer       stateWriter
}

// NewWorkItemService creates a new WorkItemService
func NewWorkItemService(
	access portssvc.CapabilityResolver,
	workItemRepo portsrepo.WorkItemRepositoryWithTx,
	updateRepo portsrepo.WorkItemUpdateWriter,
	historyRepo portsrepo.StatusHistoryRepositoryFacade,
	options ...ServiceOption,
) portssvc.WorkItemSvcFacade {
	return &workItemService{
		BaseService:  newBaseService(access, options),
		workItemRepo: workItemRepo,
		updateRepo:   updateRepo,
		historyRepo:  historyRepo,
		writer:       stateWriter{workItems: workItemRepo, history: historyRepo},
	}
}

var _ portssvc.WorkItemSvcFacade = (*workItemService)(nil)

func (s *workItemService) CreateWorkItem(ctx context.Context, actorUserID string, req dto.CreateWorkItemRequest) (*domain.WorkItem, error) {
	actor, err := s.require(ctx, actorUserID, domain.CapManageWorkItems)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.OrderID) == "" || strings.TrimSpace(req.WorkshopID) == "" {
		return nil, apperrors.NewValidationFailedError("orderID and workshopID are required")
	}

	now := s.Now()
	item := domain.NewWorkItem(uuid.NewString(), req.OrderID, req.WorkshopID, req.Title, req.Description, actor.UserID, now)

	steps := make([]domain.ProcessStep, 0, len(req.Steps))
	for i, name := range req.Steps {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("step %d has no name", i+1))
		}
		steps = append(steps, domain.ProcessStep{
			ProcessStepID: uuid.NewString(),
			WorkItemID:    item.WorkItemID,
			StepOrder:     i + 1,
			Name:          name,
			Status:        domain.StepPending,
			UpdatedAt:     now,
		})
	}

	if err := s.workItemRepo.SaveWorkItem(ctx, item, steps); err != nil {
		s.LogError(ctx, err, "Failed to save work item",
			slog.String("order_id", req.OrderID),
			slog.String("workshop_id", req.WorkshopID))
		return nil, err
	}

	s.LogInfo(ctx, "Work item created",
		slog.String("work_item_id", item.WorkItemID),
		slog.Int("steps", len(steps)))
	s.Publish(ctx, domain.Event{
		Type:       domain.EventWorkItemCreated,
		ActorID:    actor.UserID,
		EntityType: entityWorkItem,
		EntityID:   item.WorkItemID,
		After:      item,
	})
	return &item, nil
}

func (s *workItemService) ApplyTransition(ctx context.Context, workItemID string, actorUserID string, req dto.TransitionRequest) (*domain.TransitionResult, error) {
	actor, err := s.Access.ResolveActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown status %q", req.Status))
	}
	if req.ProgressStep == nil {
		return nil, apperrors.NewValidationFailedError("progressStep is required")
	}
	if !domain.ValidProgressStep(*req.ProgressStep) {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("progressStep must be between %d and %d", domain.MinProgressStep, domain.MaxProgressStep))
	}

	if !actor.Can(domain.CapManageWorkItems) {
		return s.proposeTransition(ctx, actor, workItemID, req)
	}
	return s.commitTransition(ctx, actor, workItemID, req)
}

// proposeTransition stores the request verbatim as a PENDING proposal.
func (s *workItemService) proposeTransition(ctx context.Context, actor *domain.Actor, workItemID string, req dto.TransitionRequest) (*domain.TransitionResult, error) {
	if _, err := s.workItemRepo.FindWorkItemByID(ctx, workItemID); err != nil {
		return nil, err
	}

	now := s.Now()
	status := req.Status
	step := *req.ProgressStep
	update := domain.WorkItemUpdate{
		UpdateID:              uuid.NewString(),
		WorkItemID:            workItemID,
		RequestedByUserID:     actor.UserID,
		RequestedStatus:       &status,
		RequestedProgressStep: &step,
		RequestedNote:         req.Note,
		State:                 domain.UpdatePending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.updateRepo.SaveUpdate(ctx, update); err != nil {
		s.LogError(ctx, err, "Failed to save pending update", slog.String("work_item_id", workItemID))
		return nil, err
	}

	s.Metrics.RecordTransition("pending", string(status))
	s.LogInfo(ctx, "Transition stored for review",
		slog.String("work_item_id", workItemID),
		slog.String("update_id", update.UpdateID))
	s.Publish(ctx, domain.Event{
		Type:       domain.EventUpdateRequested,
		ActorID:    actor.UserID,
		EntityType: entityWorkItemUpdate,
		EntityID:   update.UpdateID,
		After:      update,
	})
	return &domain.TransitionResult{Pending: true, Update: &update}, nil
}

// commitTransition writes the change and its history entry in one transaction.
func (s *workItemService) commitTransition(ctx context.Context, actor *domain.Actor, workItemID string, req dto.TransitionRequest) (*domain.TransitionResult, error) {
	tx, err := s.workItemRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transition transaction")
		return nil, err
	}
	defer s.workItemRepo.Rollback(ctx, tx)

	status := req.Status
	step := *req.ProgressStep
	before, after, err := s.writer.apply(ctx, tx, workItemID, stateChange{
		Status:       &status,
		ProgressStep: &step,
		HistoryActor: actor.UserID,
		UpdatedBy:    actor.UserID,
		Note:         req.Note,
		At:           s.Now(),
	})
	if err != nil {
		s.Metrics.RecordTransition("failed", string(status))
		s.LogError(ctx, err, "Failed to apply transition", slog.String("work_item_id", workItemID))
		return nil, err
	}
	if err := s.workItemRepo.Commit(ctx, tx); err != nil {
		s.Metrics.RecordTransition("failed", string(status))
		s.LogError(ctx, err, "Failed to commit transition", slog.String("work_item_id", workItemID))
		return nil, err
	}

	s.Metrics.RecordTransition("committed", string(after.CurrentStatus))
	s.LogInfo(ctx, "Transition committed",
		slog.String("work_item_id", workItemID),
		slog.String("from", string(before.CurrentStatus)),
		slog.String("to", string(after.CurrentStatus)))
	s.Publish(ctx, domain.Event{
		Type:       domain.EventWorkItemTransitioned,
		ActorID:    actor.UserID,
		EntityType: entityWorkItem,
		EntityID:   workItemID,
		Before:     before,
		After:      after,
	})
	return &domain.TransitionResult{WorkItem: &after}, nil
}

func (s *workItemService) GetWorkItem(ctx context.Context, actorUserID string, workItemID string) (*domain.WorkItemWithSteps, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	item, err := s.workItemRepo.FindWorkItemByID(ctx, workItemID)
	if err != nil {
		return nil, err
	}
	steps, err := s.workItemRepo.FindProcessSteps(ctx, workItemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load process steps", slog.String("work_item_id", workItemID))
		return nil, err
	}
	return &domain.WorkItemWithSteps{WorkItem: *item, Steps: steps}, nil
}

func (s *workItemService) ListWorkItems(ctx context.Context, actorUserID string, filter domain.WorkItemFilter) ([]domain.WorkItem, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown status %q", *filter.Status))
	}
	return s.workItemRepo.ListWorkItems(ctx, filter)
}

func (s *workItemService) ListArchivedWorkItems(ctx context.Context, actorUserID string, limit int, nextToken *string) ([]domain.WorkItem, *string, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, nil, err
	}
	return s.workItemRepo.ListArchivedWorkItems(ctx, limit, nextToken)
}

func (s *workItemService) ListHistory(ctx context.Context, actorUserID string, workItemID string) ([]domain.StatusHistoryEntry, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	if _, err := s.workItemRepo.FindWorkItemByID(ctx, workItemID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListHistoryByWorkItem(ctx, workItemID)
}
