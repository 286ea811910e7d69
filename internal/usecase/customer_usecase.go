package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// CustomerUseCase handles customer registration and authentication.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	metrics      *metrics.Metrics
}

// NewCustomerUseCase creates a new CustomerUseCase. m may be nil to
// disable metrics.
func NewCustomerUseCase(customerRepo CustomerRepository, m *metrics.Metrics) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, metrics: m}
}

// RegisterInput represents input for registering a customer.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
}

// Register creates a new customer with a hashed password.
func (uc *CustomerUseCase) Register(ctx context.Context, input RegisterInput) (*domain.Customer, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if input.Role == "" {
		input.Role = domain.RoleCustomer
	}
	if !input.Role.IsValid() {
		return nil, errors.New("invalid role")
	}

	existing, err := uc.customerRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.New("customer with this email already exists")
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	customer := &domain.Customer{
		Email:          input.Email,
		Name:           input.Name,
		HashedPassword: hashedPassword,
		Role:           input.Role,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	// Don't return the hashed password
	customer.HashedPassword = ""

	return customer, nil
}

// Authenticate verifies customer credentials.
func (uc *CustomerUseCase) Authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	customer, err := uc.authenticate(ctx, email, password)

	if uc.metrics != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		uc.metrics.AuthAttempts.WithLabelValues(status).Inc()
	}

	return customer, err
}

func (uc *CustomerUseCase) authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil || customer == nil {
		return nil, domain.ErrUnauthorized
	}

	if !customer.Active {
		return nil, domain.ErrUnauthorized
	}

	if err := verifyPassword(customer.HashedPassword, password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Return a copy so the stored hash is never cleared in place.
	authenticated := *customer
	authenticated.HashedPassword = ""

	return &authenticated, nil
}

// GetCustomer retrieves a customer by ID.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := *customer
	result.HashedPassword = ""

	return &result, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
