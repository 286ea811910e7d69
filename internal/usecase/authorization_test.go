package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func TestAuthorizer_Authorize(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepository()
	owner := customerRepo.Add(&domain.Customer{
		Email:          "alice@example.com",
		Name:           "Alice",
		HashedPassword: hashFor(t, testPassword),
		Role:           domain.RoleCustomer,
		Active:         true,
	})

	openAccount := func() *domain.Account {
		return &domain.Account{
			ID:         1,
			CustomerID: owner.ID,
			Currency:   "USD",
			Status:     domain.AccountStatusOpen,
			Balance:    decimal.RequireFromString("100.000"),
		}
	}

	authorizer := usecase.NewAuthorizer(customerRepo)

	tests := []struct {
		name      string
		caller    usecase.Principal
		params    usecase.AuthorizeParams
		errorType error
	}{
		{
			name:   "owner with password and funds",
			caller: usecase.Principal{CustomerID: owner.ID},
			params: usecase.AuthorizeParams{
				Account:         openAccount(),
				Password:        testPassword,
				RequirePassword: true,
				DebitAmount:     decimal.RequireFromString("100.000"),
			},
		},
		{
			name:   "non-owner rejected before credential check",
			caller: usecase.Principal{CustomerID: 999},
			params: usecase.AuthorizeParams{
				Account:         openAccount(),
				Password:        testPassword,
				RequirePassword: true,
			},
			errorType: domain.ErrNotAccountOwner,
		},
		{
			name:   "admin bypasses ownership only",
			caller: usecase.Principal{CustomerID: 999, Admin: true},
			params: usecase.AuthorizeParams{
				Account: openAccount(),
			},
		},
		{
			name:   "admin still fails credential check",
			caller: usecase.Principal{CustomerID: owner.ID, Admin: true},
			params: usecase.AuthorizeParams{
				Account:         openAccount(),
				Password:        "not-the-password",
				RequirePassword: true,
			},
			errorType: domain.ErrCredentialMismatch,
		},
		{
			name:   "wrong password",
			caller: usecase.Principal{CustomerID: owner.ID},
			params: usecase.AuthorizeParams{
				Account:         openAccount(),
				Password:        "not-the-password",
				RequirePassword: true,
			},
			errorType: domain.ErrCredentialMismatch,
		},
		{
			name:   "credential mismatch reported before entity status",
			caller: usecase.Principal{CustomerID: owner.ID},
			params: usecase.AuthorizeParams{
				Account: &domain.Account{
					ID:         1,
					CustomerID: owner.ID,
					Status:     domain.AccountStatusClosed,
					Balance:    decimal.Zero,
				},
				Password:        "not-the-password",
				RequirePassword: true,
			},
			errorType: domain.ErrCredentialMismatch,
		},
		{
			name:   "closed account",
			caller: usecase.Principal{CustomerID: owner.ID},
			params: usecase.AuthorizeParams{
				Account: &domain.Account{
					ID:         1,
					CustomerID: owner.ID,
					Status:     domain.AccountStatusClosed,
					Balance:    decimal.RequireFromString("100.000"),
				},
			},
			errorType: domain.ErrAccountNotOpen,
		},
		{
			name:   "locked card",
			caller: usecase.Principal{CustomerID: owner.ID},
			params: usecase.AuthorizeParams{
				Account: openAccount(),
				Card: &domain.Card{
					ID:         7,
					Status:     domain.CardStatusEnabled,
					LockStatus: domain.CardLocked,
				},
			},
			errorType: domain.ErrCardLocked,
		},
		{
			name:   "insufficient funds last",
			caller: usecase.Principal{CustomerID: owner.ID},
			params: usecase.AuthorizeParams{
				Account:     openAccount(),
				DebitAmount: decimal.RequireFromString("100.001"),
			},
			errorType: domain.ErrInsufficientFunds,
		},
		{
			name:   "no debit amount skips funds check",
			caller: usecase.Principal{CustomerID: owner.ID},
			params: usecase.AuthorizeParams{
				Account: openAccount(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizer.Authorize(context.Background(), tt.caller, tt.params)
			if tt.errorType == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.errorType) {
				t.Fatalf("expected %v, got %v", tt.errorType, err)
			}
		})
	}
}
