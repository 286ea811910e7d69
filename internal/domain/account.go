package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account product.
type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

var validAccountTypes = map[AccountType]bool{
	AccountTypeSavings:  true,
	AccountTypeChecking: true,
}

// IsValid checks if the account type is known.
func (t AccountType) IsValid() bool {
	return validAccountTypes[t]
}

// AccountStatus is the administrative state of an account.
type AccountStatus string

const (
	AccountStatusOpen      AccountStatus = "OPEN"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusClosed    AccountStatus = "CLOSED"
)

// Account represents a customer-owned balance-holding account.
// Balance is mutated only through the ledger, never directly.
type Account struct {
	ID         int64
	Number     string
	CustomerID int64
	Currency   string
	Type       AccountType
	Status     AccountStatus
	Balance    decimal.Decimal
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnedBy reports whether the account belongs to the given customer.
func (a *Account) OwnedBy(customerID int64) bool {
	return a.CustomerID == customerID
}

// ValidateMutable checks that the account status permits balance mutation.
func (a *Account) ValidateMutable() error {
	if a.Status != AccountStatusOpen {
		return fmt.Errorf("account %d is %s: %w", a.ID, a.Status, ErrAccountNotOpen)
	}
	return nil
}

// ValidateDebit checks if the account can be debited by amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return fmt.Errorf("account %d cannot cover %s: %w", a.ID, amount, ErrInsufficientFunds)
	}
	return nil
}

// ApplyDebit returns the new balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the new balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
