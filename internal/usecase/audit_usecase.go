package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// AuditUseCase exposes the audit trail to back-office administrators.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListLogs lists audit entries matching the filter. Administrators only.
func (uc *AuditUseCase) ListLogs(ctx context.Context, caller Principal, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if !caller.Admin {
		return nil, domain.ErrUnauthorized
	}

	filter.Limit = clampLimit(filter.Limit)

	return uc.auditRepo.List(ctx, filter)
}
