package repositories

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// OrderReader defines read operations for orders
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// FindOrderGraph loads an order with its items and work items (each with its steps).
	FindOrderGraph(ctx context.Context, orderID string) (*domain.OrderGraph, error)

	ListOrders(ctx context.Context, limit int, offset int) ([]domain.Order, error)
}

// OrderWriter defines write operations for orders
type OrderWriter interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	SaveOrderItem(ctx context.Context, item domain.OrderItem) error

	// SaveOrderGraph inserts an order, its items, work items and process steps atomically.
	SaveOrderGraph(ctx context.Context, graph domain.OrderGraph) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
