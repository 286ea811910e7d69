package handler

import (
	"context"
	"net/http"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	CheckConsistency(ctx context.Context) (*domain.ConsistencyReport, error)
}

// AuditService defines the audit trail access needed by LedgerHandler.
type AuditService interface {
	ListLogs(ctx context.Context, caller usecase.Principal, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// LedgerHandler handles back-office ledger endpoints.
type LedgerHandler struct {
	ledgerUC LedgerService
	auditUC  AuditService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService, auditUC AuditService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, auditUC: auditUC}
}

// CheckConsistency runs a ledger-wide integrity check.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	report, err := h.ledgerUC.CheckConsistency(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "consistency check failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyReportFromDomain(report))
}

// ListAuditLogs lists audit trail entries.
func (h *LedgerHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	filter := domain.AuditFilter{
		CustomerID: int64(parseIntQuery(r, "customer_id", 0)),
		Action:     r.URL.Query().Get("action"),
		Limit:      parseIntQuery(r, "limit", usecase.DefaultPageLimit),
		Offset:     parseIntQuery(r, "offset", 0),
	}

	logs, err := h.auditUC.ListLogs(r.Context(), principal, filter)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list audit logs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditLogsFromDomain(logs))
}
