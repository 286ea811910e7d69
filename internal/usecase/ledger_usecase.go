package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// LedgerUseCase exposes ledger-wide integrity checks.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo}
}

// CheckConsistency scans for negative balances and transfer groups whose
// two legs do not match.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (*domain.ConsistencyReport, error) {
	return uc.ledgerRepo.CheckConsistency(ctx)
}
