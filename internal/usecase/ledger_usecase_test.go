package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func TestLedgerUseCase_CheckConsistency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().CheckConsistency(gomock.Any()).Return(&domain.ConsistencyReport{
		CheckedAt: time.Now().UTC(),
	}, nil)

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	report, err := uc.CheckConsistency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Consistent() {
		t.Error("empty report should be consistent")
	}
}

func TestLedgerUseCase_CheckConsistency_Violations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().CheckConsistency(gomock.Any()).Return(&domain.ConsistencyReport{
		NegativeBalances: []domain.NegativeBalance{
			{AccountID: 7, Balance: decimal.RequireFromString("-1.000")},
		},
		UnbalancedTransfers: []string{"01J0000000000000000000TRNS"},
		CheckedAt:           time.Now().UTC(),
	}, nil)

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	report, err := uc.CheckConsistency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Consistent() {
		t.Error("report with violations must not be consistent")
	}
	if len(report.NegativeBalances) != 1 || len(report.UnbalancedTransfers) != 1 {
		t.Errorf("unexpected report contents: %+v", report)
	}
}
