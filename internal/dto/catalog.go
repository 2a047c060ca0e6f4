package dto

import "github.com/SscSPs/workorder_tracker/internal/core/domain"

type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone"`
	Note  *string `json:"note"`
}

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	TechnicalNote *string `json:"technicalNote"`
}

type CreateWorkshopRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
}

// ListCatalogParams defines query parameters shared by the catalog listings.
type ListCatalogParams struct {
	Limit           int  `form:"limit,default=50"`
	Offset          int  `form:"offset,default=0"`
	IncludeInactive bool `form:"includeInactive"`
}

type ListCustomersResponse struct {
	Customers []domain.Customer `json:"customers"`
}

type ListProductsResponse struct {
	Products []domain.Product `json:"products"`
}

type ListWorkshopsResponse struct {
	Workshops []domain.Workshop `json:"workshops"`
}
