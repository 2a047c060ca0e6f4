package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/SscSPs/workorder_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(svc portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: svc}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, svc portssvc.OrderSvcFacade) {
	h := newOrderHandler(svc)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.POST("", h.createOrder)
		orders.GET("/:orderID", h.getOrder)
		orders.POST("/:orderID/items", h.addOrderItem)
		orders.POST("/:orderID/clone", h.cloneOrder)
	}
}

// createOrder godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order number already used"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// listOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	orders, err := h.orderService.ListOrders(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		writeError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ListOrdersResponse{Orders: orders})
}

// getOrder godoc
// @Summary Get an order with its items and work items
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} domain.OrderGraph
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	graph, err := h.orderService.GetOrder(c.Request.Context(), userID, c.Param("orderID"))
	if err != nil {
		writeError(c, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, graph)
}

// addOrderItem godoc
// @Summary Add a product line to an order
// @Tags orders
// @Accept json
// @Produce json
// @Param orderID path string true "Order ID"
// @Param item body dto.AddOrderItemRequest true "Order item"
// @Success 201 {object} domain.OrderItem
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/items [post]
func (h *orderHandler) addOrderItem(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.orderService.AddOrderItem(c.Request.Context(), userID, c.Param("orderID"), req)
	if err != nil {
		writeError(c, err, "Failed to add order item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// cloneOrder godoc
// @Summary Clone an order
// @Description Copies the order's items, work items and process steps onto a new order with fresh workflow state.
// @Tags orders
// @Produce json
// @Param orderID path string true "Source order ID"
// @Success 201 {object} domain.Order
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/clone [post]
func (h *orderHandler) cloneOrder(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	sourceID := c.Param("orderID")
	order, err := h.orderService.CloneOrder(c.Request.Context(), sourceID, userID)
	if err != nil {
		writeError(c, err, "Failed to clone order")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Order cloned",
		slog.String("source_order_id", sourceID),
		slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, order)
}
