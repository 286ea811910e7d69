package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegativeBalance identifies an account whose stored balance dropped
// below zero.
type NegativeBalance struct {
	AccountID int64
	Balance   decimal.Decimal
}

// ConsistencyReport summarizes a ledger-wide integrity check. An
// unbalanced transfer is a transfer id whose two legs are missing or
// disagree on amount.
type ConsistencyReport struct {
	NegativeBalances    []NegativeBalance
	UnbalancedTransfers []string
	CheckedAt           time.Time
}

// Consistent reports whether the ledger passed all checks.
func (r *ConsistencyReport) Consistent() bool {
	return len(r.NegativeBalances) == 0 && len(r.UnbalancedTransfers) == 0
}
