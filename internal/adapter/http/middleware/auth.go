package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/iho/gobank/internal/infrastructure/auth"
	"github.com/iho/gobank/internal/usecase"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// PrincipalContextKey is the context key for the authenticated caller.
	PrincipalContextKey ContextKey = "principal"
)

// Authenticate verifies the bearer token and stores the caller's
// principal in the request context.
func Authenticate(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			principal := usecase.Principal{
				CustomerID: claims.CustomerID,
				Admin:      claims.Role.IsAdmin(),
			}

			ctx := context.WithValue(r.Context(), PrincipalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers without administrator access. Must run
// after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !principal.Admin {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// PrincipalFromContext extracts the authenticated caller from context.
func PrincipalFromContext(ctx context.Context) (usecase.Principal, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(usecase.Principal)
	return principal, ok
}
