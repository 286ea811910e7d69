package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []int64) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, updatedAt time.Time) error
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Account, error)
}

// CardRepository defines data access for cards.
type CardRepository interface {
	Create(ctx context.Context, tx Transaction, card *domain.Card) error
	GetByID(ctx context.Context, id int64) (*domain.Card, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Card, error)
	CountEnabledByAccount(ctx context.Context, tx Transaction, accountID int64) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CardStatus, updatedAt time.Time) error
	UpdateLockStatus(ctx context.Context, id int64, lockStatus domain.CardLockStatus, updatedAt time.Time) error
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Card, error)
}

// TransactionRepository defines data access for transaction records.
// Create assigns the record's ID.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	UpdateStatus(ctx context.Context, tx Transaction, id int64, status domain.TransactionStatus, updatedAt time.Time) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error)
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	CheckConsistency(ctx context.Context) (*domain.ConsistencyReport, error)
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique transfer IDs.
type IDGenerator interface {
	Generate() string
}

// NumberGenerator issues opaque account and card numbers.
type NumberGenerator interface {
	AccountNumber() string
	CardNumber() string
}

// Cache defines caching operations for display reads.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
