package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/infrastructure/auth"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	TransferHandler  *handler.TransferHandler
	CardHandler      *handler.CardHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Metrics          *metrics.Metrics
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Public auth endpoints
		r.Post("/auth/register", cfg.AuthHandler.Register)
		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTManager))

			r.Get("/auth/me", cfg.AuthHandler.Me)

			// Accounts
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", cfg.AccountHandler.Open)
				r.Get("/", cfg.AccountHandler.List)
				r.Get("/{id}", cfg.AccountHandler.Get)
				r.Get("/{id}/transactions", cfg.AccountHandler.ListTransactions)
				r.Post("/{id}/deposits", cfg.TransferHandler.Deposit)
				r.Post("/{id}/cards", cfg.CardHandler.Issue)
				r.Get("/{id}/cards", cfg.CardHandler.ListByAccount)
			})

			// Transfers
			r.Post("/transfers", cfg.TransferHandler.Create)

			// Cards
			r.Route("/cards/{id}", func(r chi.Router) {
				r.Post("/charges", cfg.CardHandler.Charge)
				r.Post("/cancel", cfg.CardHandler.Cancel)
				r.Post("/lock", cfg.CardHandler.Lock)
				r.Post("/unlock", cfg.CardHandler.Unlock)
			})

			// Back office
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
				r.Get("/audit", cfg.LedgerHandler.ListAuditLogs)
			})
		})
	})

	return r
}
