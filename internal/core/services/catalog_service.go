package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/google/uuid"
)

type catalogService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
	workshopRepo portsrepo.WorkshopRepository
}

// NewCatalogService creates a new CatalogService. Writes need can-manage-orders; any
// authenticated user may read.
func NewCatalogService(
	access portssvc.CapabilityResolver,
	customerRepo portsrepo.CustomerRepository,
	productRepo portsrepo.ProductRepository,
	workshopRepo portsrepo.WorkshopRepository,
	options ...ServiceOption,
) portssvc.CatalogSvcFacade {
	return &catalogService{
		BaseService:  newBaseService(access, options),
		customerRepo: customerRepo,
		productRepo:  productRepo,
		workshopRepo: workshopRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationFailedError("name is required")
	}
	return name, nil
}

func (s *catalogService) CreateCustomer(ctx context.Context, actorUserID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if _, err := s.require(ctx, actorUserID, domain.CapManageOrders); err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       name,
		Phone:      req.Phone,
		Note:       req.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", name))
		return nil, err
	}
	return &customer, nil
}

func (s *catalogService) ListCustomers(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Customer, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	return s.customerRepo.ListCustomers(ctx, limit, offset)
}

func (s *catalogService) CreateProduct(ctx context.Context, actorUserID string, req dto.CreateProductRequest) (*domain.Product, error) {
	if _, err := s.require(ctx, actorUserID, domain.CapManageOrders); err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          name,
		TechnicalNote: req.TechnicalNote,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("name", name))
		return nil, err
	}
	return &product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Product, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	return s.productRepo.ListProducts(ctx, limit, offset)
}

func (s *catalogService) CreateWorkshop(ctx context.Context, actorUserID string, req dto.CreateWorkshopRequest) (*domain.Workshop, error) {
	if _, err := s.require(ctx, actorUserID, domain.CapManageOrders); err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	workshop := domain.Workshop{
		WorkshopID: uuid.NewString(),
		Name:       name,
		Location:   req.Location,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.workshopRepo.SaveWorkshop(ctx, workshop); err != nil {
		s.LogError(ctx, err, "Failed to save workshop", slog.String("name", name))
		return nil, err
	}
	return &workshop, nil
}

func (s *catalogService) ListWorkshops(ctx context.Context, actorUserID string, includeInactive bool) ([]domain.Workshop, error) {
	if _, err := s.Access.ResolveActor(ctx, actorUserID); err != nil {
		return nil, err
	}
	return s.workshopRepo.ListWorkshops(ctx, includeInactive)
}
