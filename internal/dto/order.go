package dto

import (
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to create an order.
type CreateOrderRequest struct {
	OrderNumber string  `json:"orderNumber" binding:"required,max=128"`
	CustomerID  string  `json:"customerID" binding:"required"`
	ProjectName *string `json:"projectName"`
	Notes       *string `json:"notes"`
}

// AddOrderItemRequest adds a product line to an order.
type AddOrderItemRequest struct {
	ProductID string           `json:"productID" binding:"required"`
	Quantity  *decimal.Decimal `json:"quantity"`
	Note      *string          `json:"note"`
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListOrdersResponse wraps the list of orders.
type ListOrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}
