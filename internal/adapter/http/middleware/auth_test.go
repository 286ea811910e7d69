package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/auth"
	"github.com/iho/gobank/internal/usecase"
)

func contextWithPrincipal(r *http.Request, p usecase.Principal) context.Context {
	return context.WithValue(r.Context(), PrincipalContextKey, p)
}

func issueToken(t *testing.T, manager *auth.JWTManager, role domain.Role) string {
	t.Helper()

	token, err := manager.Generate(&domain.Customer{ID: 7, Email: "alice@example.com", Role: role})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Minute)

	var gotPrincipal usecase.Principal
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotPrincipal, _ = PrincipalFromContext(r.Context())
	})

	handler := Authenticate(manager)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager, domain.RoleCustomer))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("expected next handler to be called")
	}
	if gotPrincipal.CustomerID != 7 || gotPrincipal.Admin {
		t.Fatalf("unexpected principal: %+v", gotPrincipal)
	}
}

func TestAuthenticateAdminRole(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Minute)

	var gotPrincipal usecase.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, _ = PrincipalFromContext(r.Context())
	})

	handler := Authenticate(manager)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager, domain.RoleAdmin))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !gotPrincipal.Admin {
		t.Fatalf("expected admin principal, got %+v", gotPrincipal)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Minute)
	otherManager := auth.NewJWTManager("other-secret", time.Minute)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + issueToken(t, otherManager, domain.RoleCustomer)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Authenticate(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler should not be called")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(contextWithPrincipal(req, usecase.Principal{CustomerID: 1, Admin: true}))
		rec := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("customer forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(contextWithPrincipal(req, usecase.Principal{CustomerID: 1}))
		rec := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
