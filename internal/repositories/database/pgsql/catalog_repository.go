package pgsql

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// findOne runs a single-row catalog lookup and maps an empty result to ErrNotFound.
func findOne[T any](ctx context.Context, pool *pgxpool.Pool, query string, args ...any) (*T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query catalog", err)
	}
	defer rows.Close()
	out, err := collect[T](rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect catalog rows", err)
	}
	if len(out) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &out[0], nil
}

func findMany[T any](ctx context.Context, pool *pgxpool.Pool, query string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query catalog", err)
	}
	defer rows.Close()
	out, err := collect[T](rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect catalog rows", err)
	}
	return out, nil
}

func pageArgs(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// --- customers ---

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, phone, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, customer.CustomerID, customer.Name, customer.Phone, customer.Note, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewDuplicateError("customer " + customer.CustomerID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save customer", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return findOne[domain.Customer](ctx, r.Pool,
		`SELECT customer_id, name, phone, note, created_at, updated_at FROM customers WHERE customer_id = $1`, customerID)
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	limit, offset = pageArgs(limit, offset)
	return findMany[domain.Customer](ctx, r.Pool,
		`SELECT customer_id, name, phone, note, created_at, updated_at FROM customers ORDER BY name, customer_id LIMIT $1 OFFSET $2`, limit, offset)
}

// --- products ---

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, technical_note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, product.ProductID, product.Name, product.TechnicalNote, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewDuplicateError("product " + product.ProductID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save product", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return findOne[domain.Product](ctx, r.Pool,
		`SELECT product_id, name, technical_note, created_at, updated_at FROM products WHERE product_id = $1`, productID)
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	limit, offset = pageArgs(limit, offset)
	return findMany[domain.Product](ctx, r.Pool,
		`SELECT product_id, name, technical_note, created_at, updated_at FROM products ORDER BY name, product_id LIMIT $1 OFFSET $2`, limit, offset)
}

// --- workshops ---

type PgxWorkshopRepository struct {
	BaseRepository
}

func newPgxWorkshopRepository(pool *pgxpool.Pool) portsrepo.WorkshopRepository {
	return &PgxWorkshopRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkshopRepository = (*PgxWorkshopRepository)(nil)

func (r *PgxWorkshopRepository) SaveWorkshop(ctx context.Context, workshop domain.Workshop) error {
	query := `
		INSERT INTO workshops (workshop_id, name, location, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, workshop.WorkshopID, workshop.Name, workshop.Location, workshop.IsActive, workshop.CreatedAt, workshop.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewDuplicateError("workshop " + workshop.Name + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save workshop", err)
	}
	return nil
}

func (r *PgxWorkshopRepository) FindWorkshopByID(ctx context.Context, workshopID string) (*domain.Workshop, error) {
	return findOne[domain.Workshop](ctx, r.Pool,
		`SELECT workshop_id, name, location, is_active, created_at, updated_at FROM workshops WHERE workshop_id = $1`, workshopID)
}

func (r *PgxWorkshopRepository) ListWorkshops(ctx context.Context, includeInactive bool) ([]domain.Workshop, error) {
	return findMany[domain.Workshop](ctx, r.Pool,
		`SELECT workshop_id, name, location, is_active, created_at, updated_at FROM workshops WHERE is_active OR $1 ORDER BY name`, includeInactive)
}
