package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// AccountUseCase handles account lifecycle and display reads.
type AccountUseCase struct {
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	numGen      NumberGenerator
	cache       Cache
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. cache and m may be
// nil to disable read caching and metrics.
func NewAccountUseCase(accountRepo AccountRepository, txnRepo TransactionRepository, numGen NumberGenerator, cache Cache, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		numGen:      numGen,
		cache:       cache,
		metrics:     m,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	Caller   Principal
	Currency string
	Type     domain.AccountType
}

// OpenAccount creates an OPEN account with zero balance for the caller.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	// Store the canonical form so currency comparisons on transfers
	// never fail on casing.
	currency := domain.NormalizeCurrency(input.Currency)
	if err := domain.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%s: %w", input.Type, domain.ErrInvalidAccountType)
	}

	now := time.Now().UTC()

	account := &domain.Account{
		Number:     uc.numGen.AccountNumber(),
		CustomerID: input.Caller.CustomerID,
		Currency:   currency,
		Type:       input.Type,
		Status:     domain.AccountStatusOpen,
		Balance:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.Inc()
	}
	uc.countOperation("open")

	return account, nil
}

// GetAccount retrieves an account for display. Reads may be served from
// a short-TTL cache; reads that precede a mutation never come here.
func (uc *AccountUseCase) GetAccount(ctx context.Context, caller Principal, id int64) (*domain.Account, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, accountCacheKey(id)); err == nil {
			var account domain.Account
			if json.Unmarshal(data, &account) == nil {
				if err := uc.checkOwnership(caller, &account); err != nil {
					return nil, err
				}
				return &account, nil
			}
		}
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.checkOwnership(caller, account); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(account); err == nil {
			_ = uc.cache.Set(ctx, accountCacheKey(id), data, accountCacheTTL)
		}
	}

	uc.countOperation("get")

	return account, nil
}

// ListAccounts lists the caller's accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, caller Principal, limit, offset int) ([]*domain.Account, error) {
	limit = clampLimit(limit)
	uc.countOperation("list")

	return uc.accountRepo.ListByCustomer(ctx, caller.CustomerID, limit, offset)
}

// ListTransactions lists transaction records for an account the caller
// owns.
func (uc *AccountUseCase) ListTransactions(ctx context.Context, caller Principal, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkOwnership(caller, account); err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	uc.countOperation("list_transactions")

	return uc.txnRepo.ListByAccount(ctx, accountID, limit, offset)
}

func (uc *AccountUseCase) countOperation(operation string) {
	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues(operation).Inc()
	}
}

func (uc *AccountUseCase) checkOwnership(caller Principal, account *domain.Account) error {
	if !caller.Admin && !account.OwnedBy(caller.CustomerID) {
		return fmt.Errorf("account %d: %w", account.ID, domain.ErrNotAccountOwner)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

func accountCacheKey(id int64) string {
	return "account:" + strconv.FormatInt(id, 10)
}
