package services

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/dto"
)

// OrderReaderSvc defines read operations for orders
type OrderReaderSvc interface {
	GetOrder(ctx context.Context, actorUserID string, orderID string) (*domain.OrderGraph, error)
	ListOrders(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Order, error)
}

// OrderWriterSvc defines write operations for orders
type OrderWriterSvc interface {
	CreateOrder(ctx context.Context, actorUserID string, req dto.CreateOrderRequest) (*domain.Order, error)
	AddOrderItem(ctx context.Context, actorUserID string, orderID string, req dto.AddOrderItemRequest) (*domain.OrderItem, error)

	// CloneOrder copies an order's structure (items, work items, steps) onto a new order
	// with fresh workflow state.
	CloneOrder(ctx context.Context, orderID string, actorUserID string) (*domain.Order, error)
}

// OrderSvcFacade combines all order service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
