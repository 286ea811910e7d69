package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/auth"
	"github.com/iho/gobank/internal/usecase"
)

// CustomerService defines the behavior needed by AuthHandler.
type CustomerService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.Customer, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}

// AuthHandler handles registration and authentication endpoints.
type AuthHandler struct {
	customerUC CustomerService
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(customerUC CustomerService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		customerUC: customerUC,
		jwtManager: jwtManager,
	}
}

// Register creates a new customer account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(customer))
}

// Login verifies credentials and issues a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(customer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token:    token,
		Customer: dto.CustomerFromDomain(customer),
	})
}

// Me returns the authenticated customer.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	customer, err := h.customerUC.GetCustomer(r.Context(), principal.CustomerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}
