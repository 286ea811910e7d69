package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateCurrency(t *testing.T) {
	for _, currency := range []string{"EUR", "USD", "eur", " usd "} {
		if err := ValidateCurrency(currency); err != nil {
			t.Errorf("expected %q to be valid: %v", currency, err)
		}
	}

	if err := ValidateCurrency("XXX"); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription("Rent for August"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateDescription("   "); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("expected ErrEmptyDescription, got %v", err)
	}

	if err := ValidateDescription(strings.Repeat("x", MaxDescriptionLength+1)); err == nil {
		t.Error("expected error for oversized description")
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("alice@example.com"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, email := range []string{"", "not-an-email", "a@b"} {
		if err := ValidateEmail(email); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("Sup3rSecret"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"} {
		if err := ValidatePassword(password); !errors.Is(err, ErrPasswordTooWeak) {
			t.Errorf("expected ErrPasswordTooWeak for %q, got %v", password, err)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	txn := &Transaction{
		AccountID:   1,
		Type:        TransactionTypeDeposit,
		Amount:      decimal.RequireFromString("10.000"),
		Description: "Deposit",
	}

	if err := txn.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	t.Run("invalid type", func(t *testing.T) {
		bad := *txn
		bad.Type = "REFUND"
		if err := bad.Validate(); !errors.Is(err, ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		bad := *txn
		bad.Amount = decimal.Zero
		if err := bad.Validate(); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		bad := *txn
		bad.Description = ""
		if err := bad.Validate(); !errors.Is(err, ErrEmptyDescription) {
			t.Errorf("expected ErrEmptyDescription, got %v", err)
		}
	})
}
