package services

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/dto"
)

// CatalogSvcFacade manages customers, products and workshops.
type CatalogSvcFacade interface {
	CreateCustomer(ctx context.Context, actorUserID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Customer, error)

	CreateProduct(ctx context.Context, actorUserID string, req dto.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Product, error)

	CreateWorkshop(ctx context.Context, actorUserID string, req dto.CreateWorkshopRequest) (*domain.Workshop, error)
	ListWorkshops(ctx context.Context, actorUserID string, includeInactive bool) ([]domain.Workshop, error)
}
