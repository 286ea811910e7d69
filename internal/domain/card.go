package domain

import (
	"fmt"
	"time"
)

// CardType classifies a card product.
type CardType string

const (
	CardTypeDebit  CardType = "DEBIT"
	CardTypeCredit CardType = "CREDIT"
)

var validCardTypes = map[CardType]bool{
	CardTypeDebit:  true,
	CardTypeCredit: true,
}

// IsValid checks if the card type is known.
func (t CardType) IsValid() bool {
	return validCardTypes[t]
}

// CardStatus is the administrative state of a card. Only ENABLED cards
// can spend; DISABLED is terminal.
type CardStatus string

const (
	CardStatusEnabled   CardStatus = "ENABLED"
	CardStatusDisabled  CardStatus = "DISABLED"
	CardStatusSuspended CardStatus = "SUSPENDED"
	CardStatusLocked    CardStatus = "LOCKED"
	CardStatusBlocked   CardStatus = "BLOCKED"
)

// CardLockStatus is a customer-settable hold, layered on top of the
// administrative status and reversible by the customer.
type CardLockStatus string

const (
	CardUnlocked CardLockStatus = "UNLOCKED"
	CardLocked   CardLockStatus = "LOCKED"
)

// MaxEnabledCardsPerAccount caps active cards per account.
const MaxEnabledCardsPerAccount = 5

// Card is a spending instrument linked to exactly one account. It has no
// balance of its own; every charge draws on the linked account.
type Card struct {
	ID         int64
	Number     string
	AccountID  int64
	Type       CardType
	Status     CardStatus
	LockStatus CardLockStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateUsable checks that both the administrative status and the
// customer lock permit spending.
func (c *Card) ValidateUsable() error {
	switch c.Status {
	case CardStatusEnabled:
	case CardStatusDisabled:
		return fmt.Errorf("card %d: %w", c.ID, ErrCardDisabled)
	case CardStatusLocked:
		return fmt.Errorf("card %d: %w", c.ID, ErrCardLocked)
	default:
		return fmt.Errorf("card %d is %s: %w", c.ID, c.Status, ErrCardNotActive)
	}

	if c.LockStatus == CardLocked {
		return fmt.Errorf("card %d: %w", c.ID, ErrCardLocked)
	}

	return nil
}
