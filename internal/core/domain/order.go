package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order; it owns its order items and work items.
type Order struct {
	OrderID     string  `json:"orderID" db:"order_id"`
	OrderNumber string  `json:"orderNumber" db:"order_number"`
	CustomerID  string  `json:"customerID" db:"customer_id"`
	ProjectName *string `json:"projectName,omitempty" db:"project_name"`
	Notes       *string `json:"notes,omitempty" db:"notes"`
	AuditFields
}

// OrderItem is a product line on an order.
type OrderItem struct {
	OrderItemID string           `json:"orderItemID" db:"order_item_id"`
	OrderID     string           `json:"orderID" db:"order_id"`
	ProductID   string           `json:"productID" db:"product_id"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty" db:"quantity"`
	Note        *string          `json:"note,omitempty" db:"note"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`
}

// WorkItemWithSteps pairs a work item with its ordered process steps.
type WorkItemWithSteps struct {
	WorkItem WorkItem      `json:"workItem"`
	Steps    []ProcessStep `json:"steps"`
}

// OrderGraph is an order with everything it owns.
type OrderGraph struct {
	Order     Order               `json:"order"`
	Items     []OrderItem         `json:"items"`
	WorkItems []WorkItemWithSteps `json:"workItems"`
}
