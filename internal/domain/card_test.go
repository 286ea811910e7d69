package domain

import (
	"errors"
	"testing"
)

func TestCardValidateUsable(t *testing.T) {
	tests := []struct {
		name       string
		status     CardStatus
		lockStatus CardLockStatus
		wantErr    error
	}{
		{"enabled unlocked card is usable", CardStatusEnabled, CardUnlocked, nil},
		{"disabled card", CardStatusDisabled, CardUnlocked, ErrCardDisabled},
		{"administratively locked card", CardStatusLocked, CardUnlocked, ErrCardLocked},
		{"suspended card", CardStatusSuspended, CardUnlocked, ErrCardNotActive},
		{"blocked card", CardStatusBlocked, CardUnlocked, ErrCardNotActive},
		{"customer-locked card", CardStatusEnabled, CardLocked, ErrCardLocked},
		{"disabled wins over customer lock", CardStatusDisabled, CardLocked, ErrCardDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &Card{ID: 1, Status: tt.status, LockStatus: tt.lockStatus}
			err := card.ValidateUsable()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTransactionTypeIsCardType(t *testing.T) {
	if !TransactionTypeCardCharge.IsCardType() {
		t.Error("CARD_CHARGE should be a card type")
	}
	if !TransactionTypeWithdrawal.IsCardType() {
		t.Error("WITHDRAWAL should be a card type")
	}
	if TransactionTypeTransferTo.IsCardType() {
		t.Error("TRANSFER_TO should not be a card type")
	}
	if TransactionTypeDeposit.IsCardType() {
		t.Error("DEPOSIT should not be a card type")
	}
}
