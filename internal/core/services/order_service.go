package services

import (
	"context"
	"errors"
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

const entityOrder = "order"

// orderService implements the OrderSvcFacade interface
type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
	newID        func() string
}

// NewOrderService creates a new OrderService
func NewOrderService(
	access portssvc.CapabilityResolver,
	orderRepo portsrepo.OrderRepositoryFacade,
	customerRepo portsrepo.CustomerRepository,
	productRepo portsrepo.ProductRepository,
	options ...ServiceOption,
) portssvc.OrderSvcFacade {
	return &orderService{
		BaseService:  newBaseService(access, options),
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		newID:        uuid.NewString,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) CreateOrder(ctx context.Context, actorUserID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	actor, err := s.require(ctx, actorUserID, domain.CapManageOrders)
	if err != nil {
		return nil, err
	}
	number := strings.TrimSpace(req.OrderNumber)
	if number == "" {
		return nil, apperrors.NewValidationFailedError("orderNumber is required")
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("customer %s does not exist", req.CustomerID))
		}
		return nil, err
	}

	now := s.Now()
	order := domain.Order{
		OrderID:     s.newID(),
		OrderNumber: number,
		CustomerID:  req.CustomerID,
		ProjectName: req.ProjectName,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
		},
	}
	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("order_number", number))
		return nil, err
	}

	s.LogInfo(ctx, "Order created", slog.String("order_id", order.OrderID))
	s.Publish(ctx, domain.Event{
		Type:       domain.EventOrderCreated,
		ActorID:    actor.UserID,
		EntityType: entityOrder,
		EntityID:   order.OrderID,
		After:      order,
	})
	return &order, nil
}

func (s *orderService) AddOrderItem(ctx context.Context, actorUserID string, orderID string, req dto.AddOrderItemRequest) (*domain.OrderItem, error) {
	if _, err := s.require(ctx, actorUserID, domain.CapCloneOrders); err != nil {
		return nil, err
	}
	if req.Quantity != nil && !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationFailedError("quantity must be positive")
	}
	if _, err := s.orderRepo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("product %s does not exist", req.ProductID))
		}
		return nil, err
	}

	now := s.Now()
	item := domain.OrderItem{
		OrderItemID: s.newID(),
		OrderID:     orderID,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Note:        req.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.orderRepo.SaveOrderItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save order item", slog.String("order_id", orderID))
		return nil, err
	}
	return &item, nil
}

func (s *orderService) GetOrder(ctx context.Context, actorUserID string, orderID string) (*domain.OrderGraph, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	return s.orderRepo.FindOrderGraph(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Order, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.orderRepo.ListOrders(ctx, limit, offset)
}

func (s *orderService) CloneOrder(ctx context.Context, orderID string, actorUserID string) (*domain.Order, error) {
	actor, err := s.require(ctx, actorUserID, domain.CapCloneOrders)
	if err != nil {
		return nil, err
	}

	source, err := s.orderRepo.FindOrderGraph(ctx, orderID)
	if err != nil {
		s.Metrics.RecordClone("failure")
		return nil, err
	}

	stamp := s.Now()
	clone := cloneOrderGraph(*source, actor.UserID, stamp, s.newID)
	err = s.orderRepo.SaveOrderGraph(ctx, clone)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Another clone of the same source took this millisecond suffix.
		stamp = nextCloneStamp(s.Now(), stamp)
		s.LogInfo(ctx, "Clone number taken, retrying",
			slog.String("source_order_id", orderID),
			slog.String("order_number", clone.Order.OrderNumber))
		clone = cloneOrderGraph(*source, actor.UserID, stamp, s.newID)
		err = s.orderRepo.SaveOrderGraph(ctx, clone)
	}
	if err != nil {
		s.Metrics.RecordClone("failure")
		s.LogError(ctx, err, "Failed to save cloned order", slog.String("source_order_id", orderID))
		return nil, err
	}

	s.Metrics.RecordClone("success")
	s.LogInfo(ctx, "Order cloned",
		slog.String("source_order_id", orderID),
		slog.String("order_id", clone.Order.OrderID),
		slog.Int("work_items", len(clone.WorkItems)))
	s.Publish(ctx, domain.Event{
		Type:       domain.EventOrderCloned,
		ActorID:    actor.UserID,
		EntityType: entityOrder,
		EntityID:   clone.Order.OrderID,
		After: map[string]string{
			"sourceOrderID": orderID,
			"orderID":       clone.Order.OrderID,
			"orderNumber":   clone.Order.OrderNumber,
		},
	})
	return &clone.Order, nil
}

// nextCloneStamp returns now, or prev plus one millisecond when now has not moved
// past prev's millisecond.
func nextCloneStamp(now, prev time.Time) time.Time {
	if now.UnixMilli() <= prev.UnixMilli() {
		return prev.Add(time.Millisecond)
	}
	return now
}

// cloneOrderGraph copies the structure of src under fresh IDs. Work items restart at
// NEW/0 with no assignee and every process step restarts as PENDING.
func cloneOrderGraph(src domain.OrderGraph, actorUserID string, now time.Time, newID func() string) domain.OrderGraph {
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: actorUserID, LastUpdatedAt: now}

	order := src.Order
	order.OrderID = newID()
	order.OrderNumber = fmt.Sprintf("%s-COPY-%d", src.Order.OrderNumber, now.UnixMilli())
	order.AuditFields = audit

	items := make([]domain.OrderItem, 0, len(src.Items))
	for _, it := range src.Items {
		it.OrderItemID = newID()
		it.OrderID = order.OrderID
		it.CreatedAt = now
		it.UpdatedAt = now
		items = append(items, it)
	}

	workItems := make([]domain.WorkItemWithSteps, 0, len(src.WorkItems))
	for _, w := range src.WorkItems {
		item := domain.NewWorkItem(newID(), order.OrderID, w.WorkItem.WorkshopID, w.WorkItem.Title, w.WorkItem.Description, actorUserID, now)
		steps := make([]domain.ProcessStep, 0, len(w.Steps))
		for _, st := range w.Steps {
			steps = append(steps, domain.ProcessStep{
				ProcessStepID: newID(),
				WorkItemID:    item.WorkItemID,
				StepOrder:     st.StepOrder,
				Name:          st.Name,
				Status:        domain.StepPending,
				UpdatedAt:     now,
			})
		}
		workItems = append(workItems, domain.WorkItemWithSteps{WorkItem: item, Steps: steps})
	}

	return domain.OrderGraph{Order: order, Items: items, WorkItems: workItems}
}
