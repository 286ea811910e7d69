package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
)

const customerColumns = `id, email, name, hashed_password, role, active, created_at, updated_at`

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a new customer and assigns their ID.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (email, name, hashed_password, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		customer.Email,
		customer.Name,
		customer.HashedPassword,
		customer.Role,
		customer.Active,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Scan(&customer.ID)
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrCustomerNotFound)
	}

	return customer, err
}

// GetByEmail retrieves a customer by email. A missing customer is not an
// error here; registration uses this as an existence probe.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	return customer, err
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer

	err := row.Scan(
		&customer.ID,
		&customer.Email,
		&customer.Name,
		&customer.HashedPassword,
		&customer.Role,
		&customer.Active,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}
