package repositories

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

type WorkshopRepository interface {
	SaveWorkshop(ctx context.Context, workshop domain.Workshop) error
	FindWorkshopByID(ctx context.Context, workshopID string) (*domain.Workshop, error)
	ListWorkshops(ctx context.Context, includeInactive bool) ([]domain.Workshop, error)
}
