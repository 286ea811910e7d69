package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// Ledger owns the balance-mutation primitives. It is the only component
// that writes Account.Balance; both operations run inside the caller's
// transaction, against accounts the caller has row-locked.
type Ledger struct {
	accountRepo AccountRepository
}

// NewLedger creates a new Ledger.
func NewLedger(accountRepo AccountRepository) *Ledger {
	return &Ledger{accountRepo: accountRepo}
}

// Credit adds amount to the account balance.
func (l *Ledger) Credit(ctx context.Context, tx Transaction, account *domain.Account, amount decimal.Decimal, now time.Time) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	newBalance := account.ApplyCredit(amount)
	if err := l.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return err
	}

	account.Balance = newBalance
	account.Version++
	account.UpdatedAt = now

	return nil
}

// Debit subtracts amount from the account balance. Funds sufficiency is
// re-checked here even when the authorization chain already checked it,
// so a negative balance can never be stored.
func (l *Ledger) Debit(ctx context.Context, tx Transaction, account *domain.Account, amount decimal.Decimal, now time.Time) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	if account.Balance.LessThan(amount) {
		return fmt.Errorf("account %d cannot cover %s: %w", account.ID, amount, domain.ErrInsufficientFunds)
	}

	newBalance := account.ApplyDebit(amount)
	if err := l.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return err
	}

	account.Balance = newBalance
	account.Version++
	account.UpdatedAt = now

	return nil
}
