package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/iho/gobank/internal/domain"
)

// Principal identifies the authenticated caller of a core operation.
// The core never consults ambient request state; callers thread this
// through explicitly.
type Principal struct {
	CustomerID int64
	Admin      bool
}

// AuthorizeParams describes one authorization request against
// already-loaded entities.
type AuthorizeParams struct {
	// Account is the account being mutated; for card operations, the
	// account behind the card.
	Account *domain.Account

	// Card, when set, must be usable in addition to the account checks.
	Card *domain.Card

	// Password is checked against the caller's stored hash when
	// RequirePassword is set. Mismatch fails regardless of role.
	Password        string
	RequirePassword bool

	// DebitAmount, when positive, triggers the funds-sufficiency check.
	DebitAmount decimal.Decimal
}

// Authorizer runs the ordered pre-mutation checks: ownership, credential,
// entity status, funds sufficiency. Each check short-circuits on failure.
// It performs no side effects.
type Authorizer struct {
	customerRepo CustomerRepository
}

// NewAuthorizer creates a new Authorizer.
func NewAuthorizer(customerRepo CustomerRepository) *Authorizer {
	return &Authorizer{customerRepo: customerRepo}
}

// Authorize decides whether caller may perform the described operation.
func (a *Authorizer) Authorize(ctx context.Context, caller Principal, p AuthorizeParams) error {
	// 1. Ownership. Administrators bypass this check only.
	if !caller.Admin && p.Account != nil && !p.Account.OwnedBy(caller.CustomerID) {
		return fmt.Errorf("account %d: %w", p.Account.ID, domain.ErrNotAccountOwner)
	}

	// 2. Credential.
	if p.RequirePassword {
		customer, err := a.customerRepo.GetByID(ctx, caller.CustomerID)
		if err != nil {
			return err
		}

		if bcrypt.CompareHashAndPassword([]byte(customer.HashedPassword), []byte(p.Password)) != nil {
			return domain.ErrCredentialMismatch
		}
	}

	// 3. Entity status.
	if p.Account != nil {
		if err := p.Account.ValidateMutable(); err != nil {
			return err
		}
	}

	if p.Card != nil {
		if err := p.Card.ValidateUsable(); err != nil {
			return err
		}
	}

	// 4. Funds sufficiency.
	if p.DebitAmount.IsPositive() && p.Account != nil {
		if p.Account.Balance.LessThan(p.DebitAmount) {
			return fmt.Errorf("account %d cannot cover %s: %w", p.Account.ID, p.DebitAmount, domain.ErrInsufficientFunds)
		}
	}

	return nil
}
