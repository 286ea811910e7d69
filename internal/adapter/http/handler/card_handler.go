package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// CardService defines the behavior needed by CardHandler.
type CardService interface {
	IssueCard(ctx context.Context, input usecase.IssueCardInput) (*domain.Card, error)
	Charge(ctx context.Context, input usecase.ChargeInput) (*domain.Transaction, error)
	CancelCard(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error)
	LockCard(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error)
	UnlockCard(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error)
	ListCards(ctx context.Context, caller usecase.Principal, accountID int64, limit, offset int) ([]*domain.Card, error)
}

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	cardUC CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardUC CardService) *CardHandler {
	return &CardHandler{cardUC: cardUC}
}

// Issue issues a new card against an account.
func (h *CardHandler) Issue(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	var req dto.IssueCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	card, err := h.cardUC.IssueCard(r.Context(), req.ToUseCaseInput(principal, accountID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to issue card", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CardFromDomain(card))
}

// Charge debits the account behind the card.
func (h *CardHandler) Charge(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	cardID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card ID", "")
		return
	}

	var req dto.ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.cardUC.Charge(r.Context(), req.ToUseCaseInput(principal, cardID))
	if err != nil {
		writeError(w, mapDomainError(err), "charge rejected", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Cancel permanently disables a card.
func (h *CardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
		return h.cardUC.CancelCard(ctx, caller, cardID)
	}, "failed to cancel card")
}

// Lock places the customer hold on a card.
func (h *CardHandler) Lock(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
		return h.cardUC.LockCard(ctx, caller, cardID)
	}, "failed to lock card")
}

// Unlock releases the customer hold on a card.
func (h *CardHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, func(ctx context.Context, caller usecase.Principal, cardID int64) (*domain.Card, error) {
		return h.cardUC.UnlockCard(ctx, caller, cardID)
	}, "failed to unlock card")
}

func (h *CardHandler) lifecycle(w http.ResponseWriter, r *http.Request, op func(context.Context, usecase.Principal, int64) (*domain.Card, error), errMsg string) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	cardID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card ID", "")
		return
	}

	card, err := op(r.Context(), principal, cardID)
	if err != nil {
		writeError(w, mapDomainError(err), errMsg, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CardFromDomain(card))
}

// ListByAccount lists cards linked to an account.
func (h *CardHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", usecase.DefaultPageLimit)
	offset := parseIntQuery(r, "offset", 0)

	cards, err := h.cardUC.ListCards(r.Context(), principal, accountID, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list cards", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCardsResponse{
		Cards: dto.CardsFromDomain(cards),
		Total: int64(len(cards)),
	})
}
