package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a money movement record.
type TransactionType string

const (
	TransactionTypeDeposit      TransactionType = "DEPOSIT"
	TransactionTypeTransferTo   TransactionType = "TRANSFER_TO"
	TransactionTypeTransferFrom TransactionType = "TRANSFER_FROM"
	TransactionTypeCardCharge   TransactionType = "CARD_CHARGE"
	TransactionTypeWithdrawal   TransactionType = "WITHDRAWAL"
)

var validTransactionTypes = map[TransactionType]bool{
	TransactionTypeDeposit:      true,
	TransactionTypeTransferTo:   true,
	TransactionTypeTransferFrom: true,
	TransactionTypeCardCharge:   true,
	TransactionTypeWithdrawal:   true,
}

// IsValid checks if the transaction type is known.
func (t TransactionType) IsValid() bool {
	return validTransactionTypes[t]
}

// IsCardType reports whether the type is allowed for a card charge.
func (t TransactionType) IsCardType() bool {
	return t == TransactionTypeCardCharge || t == TransactionTypeWithdrawal
}

// TransactionStatus is the lifecycle of a transaction record. A record is
// created PENDING and flipped to COMPLETED once the balance mutation is
// applied; rejected attempts never produce a record.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

// Transaction is a single ledger record affecting one account. The two
// legs of a transfer share a TransferID so they can be reconciled.
type Transaction struct {
	ID          int64
	AccountID   int64
	TransferID  string
	Type        TransactionType
	Status      TransactionStatus
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the record before it is persisted.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return ErrEmptyDescription
	}

	return nil
}
