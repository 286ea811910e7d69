package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

type cardServiceStub struct {
	issueFn  func(ctx context.Context, input usecase.IssueCardInput) (*domain.Card, error)
	chargeFn func(ctx context.Context, input usecase.ChargeInput) (*domain.Transaction, error)
	cancelFn func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error)
	lockFn   func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error)
	unlockFn func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error)
	listFn   func(ctx context.Context, caller usecase.Principal, accountID int64, limit, offset int) ([]*domain.Card, error)
}

func (s *cardServiceStub) IssueCard(ctx context.Context, input usecase.IssueCardInput) (*domain.Card, error) {
	return s.issueFn(ctx, input)
}

func (s *cardServiceStub) Charge(ctx context.Context, input usecase.ChargeInput) (*domain.Transaction, error) {
	return s.chargeFn(ctx, input)
}

func (s *cardServiceStub) CancelCard(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
	return s.cancelFn(ctx, caller, cardID)
}

func (s *cardServiceStub) LockCard(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
	return s.lockFn(ctx, caller, cardID)
}

func (s *cardServiceStub) UnlockCard(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
	return s.unlockFn(ctx, caller, cardID)
}

func (s *cardServiceStub) ListCards(ctx context.Context, caller usecase.Principal, accountID int64, limit, offset int) ([]*domain.Card, error) {
	return s.listFn(ctx, caller, accountID, limit, offset)
}

func TestCardHandler_Issue(t *testing.T) {
	var captured usecase.IssueCardInput
	handler := NewCardHandler(&cardServiceStub{
		issueFn: func(ctx context.Context, input usecase.IssueCardInput) (*domain.Card, error) {
			captured = input
			return &domain.Card{
				ID:         1,
				Number:     "4000123412341234",
				AccountID:  input.AccountID,
				Type:       input.Type,
				Status:     domain.CardStatusEnabled,
				LockStatus: domain.CardUnlocked,
			}, nil
		},
	})

	body, _ := json.Marshal(dto.IssueCardRequest{Type: "DEBIT"})
	req := httptest.NewRequest(http.MethodPost, "/accounts/5/cards", bytes.NewReader(body))
	req = withPrincipal(req, usecase.Principal{CustomerID: 7})
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	handler.Issue(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != 5 || captured.Type != domain.CardTypeDebit {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.CardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Number != "************1234" {
		t.Fatalf("expected masked card number, got %s", resp.Number)
	}
}

func TestCardHandler_Issue_CardLimit(t *testing.T) {
	handler := NewCardHandler(&cardServiceStub{
		issueFn: func(ctx context.Context, input usecase.IssueCardInput) (*domain.Card, error) {
			return nil, domain.ErrCardLimitReached
		},
	})

	body, _ := json.Marshal(dto.IssueCardRequest{Type: "DEBIT"})
	req := httptest.NewRequest(http.MethodPost, "/accounts/5/cards", bytes.NewReader(body))
	req = withPrincipal(req, usecase.Principal{CustomerID: 7})
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	handler.Issue(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCardHandler_Charge(t *testing.T) {
	var captured usecase.ChargeInput
	handler := NewCardHandler(&cardServiceStub{
		chargeFn: func(ctx context.Context, input usecase.ChargeInput) (*domain.Transaction, error) {
			captured = input
			return &domain.Transaction{
				ID:     3,
				Type:   input.Type,
				Status: domain.TransactionStatusCompleted,
				Amount: input.Amount,
			}, nil
		},
	})

	body, _ := json.Marshal(dto.ChargeRequest{
		Amount:      decimal.RequireFromString("19.990"),
		Description: "Groceries",
		Type:        "CARD_CHARGE",
		Password:    "Secret123",
	})

	req := httptest.NewRequest(http.MethodPost, "/cards/2/charges", bytes.NewReader(body))
	req = withPrincipal(req, usecase.Principal{CustomerID: 7})
	req = withURLParam(req, "id", "2")
	rec := httptest.NewRecorder()

	handler.Charge(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.CardID != 2 || captured.Type != domain.TransactionTypeCardCharge {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
}

func TestCardHandler_Charge_CardLocked(t *testing.T) {
	handler := NewCardHandler(&cardServiceStub{
		chargeFn: func(ctx context.Context, input usecase.ChargeInput) (*domain.Transaction, error) {
			return nil, domain.ErrCardLocked
		},
	})

	body, _ := json.Marshal(dto.ChargeRequest{
		Amount:      decimal.NewFromInt(10),
		Description: "Groceries",
		Type:        "CARD_CHARGE",
	})

	req := httptest.NewRequest(http.MethodPost, "/cards/2/charges", bytes.NewReader(body))
	req = withPrincipal(req, usecase.Principal{CustomerID: 7})
	req = withURLParam(req, "id", "2")
	rec := httptest.NewRecorder()

	handler.Charge(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCardHandler_Lifecycle(t *testing.T) {
	card := &domain.Card{ID: 2, Number: "4000123412341234", Status: domain.CardStatusEnabled, LockStatus: domain.CardLocked}

	handler := NewCardHandler(&cardServiceStub{
		cancelFn: func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
			return card, nil
		},
		lockFn: func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
			return card, nil
		},
		unlockFn: func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
			return card, nil
		},
	})

	for _, op := range []func(http.ResponseWriter, *http.Request){handler.Cancel, handler.Lock, handler.Unlock} {
		req := httptest.NewRequest(http.MethodPost, "/cards/2/op", nil)
		req = withPrincipal(req, usecase.Principal{CustomerID: 7})
		req = withURLParam(req, "id", "2")
		rec := httptest.NewRecorder()

		op(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	}
}

func TestCardHandler_Cancel_AlreadyDisabled(t *testing.T) {
	handler := NewCardHandler(&cardServiceStub{
		cancelFn: func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
			return nil, domain.ErrCardDisabled
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/cards/2/cancel", nil)
	req = withPrincipal(req, usecase.Principal{CustomerID: 7})
	req = withURLParam(req, "id", "2")
	rec := httptest.NewRecorder()

	handler.Cancel(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCardHandler_ListByAccount(t *testing.T) {
	handler := NewCardHandler(&cardServiceStub{
		listFn: func(ctx context.Context, caller usecase.Principal, accountID int64, limit, offset int) ([]*domain.Card, error) {
			if accountID != 5 {
				t.Fatalf("expected account 5, got %d", accountID)
			}
			return []*domain.Card{{ID: 1, Number: "4000123412341234"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/5/cards", nil)
	req = withPrincipal(req, usecase.Principal{CustomerID: 7})
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListCardsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected one card, got %+v", resp)
	}
}
