package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// withPrincipal stamps an authenticated caller onto the request, the way
// the auth middleware would.
func withPrincipal(r *http.Request, p usecase.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.PrincipalContextKey, p)
	return r.WithContext(ctx)
}

// withURLParam injects a chi route parameter.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrCardNotFound, http.StatusNotFound},
		{domain.ErrCustomerNotFound, http.StatusNotFound},
		{fmt.Errorf("account 7: %w", domain.ErrAccountNotFound), http.StatusNotFound},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrExpiredToken, http.StatusUnauthorized},
		{domain.ErrNotAccountOwner, http.StatusForbidden},
		{domain.ErrCredentialMismatch, http.StatusForbidden},
		{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{domain.ErrAccountNotOpen, http.StatusUnprocessableEntity},
		{domain.ErrCardLocked, http.StatusUnprocessableEntity},
		{domain.ErrCardLimitReached, http.StatusUnprocessableEntity},
		{domain.ErrSameAccount, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrCurrencyMismatch, http.StatusBadRequest},
		{domain.ErrPasswordTooWeak, http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=50&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 20); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}

	if got := parseIntQuery(req, "missing", 20); got != 20 {
		t.Fatalf("expected default 20, got %d", got)
	}

	if got := parseIntQuery(req, "bad", 20); got != 20 {
		t.Fatalf("expected default for unparsable value, got %d", got)
	}
}

func TestRequirePrincipalMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if _, ok := requirePrincipal(rec, req); ok {
		t.Fatal("expected missing principal to be rejected")
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
