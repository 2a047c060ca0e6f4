package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers customer, product and workshop routes.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(cs)

	rg.GET("/customers", h.listCustomers)
	rg.POST("/customers", h.createCustomer)
	rg.GET("/products", h.listProducts)
	rg.POST("/products", h.createProduct)
	rg.GET("/workshops", h.listWorkshops)
	rg.POST("/workshops", h.createWorkshop)
}

// createCustomer godoc
// @Summary Create a customer
// @Tags catalog
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *catalogHandler) createCustomer(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	customer, err := h.catalogService.CreateCustomer(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// listCustomers godoc
// @Summary List customers
// @Tags catalog
// @Produce json
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *catalogHandler) listCustomers(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListCatalogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	customers, err := h.catalogService.ListCustomers(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		writeError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ListCustomersResponse{Customers: customers})
}

// createProduct godoc
// @Summary Create a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	product, err := h.catalogService.CreateProduct(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// listProducts godoc
// @Summary List products
// @Tags catalog
// @Produce json
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListProductsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListCatalogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	products, err := h.catalogService.ListProducts(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		writeError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: products})
}

// createWorkshop godoc
// @Summary Create a workshop
// @Tags catalog
// @Accept json
// @Produce json
// @Param workshop body dto.CreateWorkshopRequest true "Workshop details"
// @Success 201 {object} domain.Workshop
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workshops [post]
func (h *catalogHandler) createWorkshop(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	workshop, err := h.catalogService.CreateWorkshop(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err, "Failed to create workshop")
		return
	}
	c.JSON(http.StatusCreated, workshop)
}

// listWorkshops godoc
// @Summary List workshops
// @Tags catalog
// @Produce json
// @Param includeInactive query bool false "Include inactive workshops"
// @Success 200 {object} dto.ListWorkshopsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workshops [get]
func (h *catalogHandler) listWorkshops(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListCatalogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	workshops, err := h.catalogService.ListWorkshops(c.Request.Context(), userID, params.IncludeInactive)
	if err != nil {
		writeError(c, err, "Failed to list workshops")
		return
	}
	c.JSON(http.StatusOK, dto.ListWorkshopsResponse{Workshops: workshops})
}
