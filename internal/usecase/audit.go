package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// writeAudit records a money-movement attempt, including rejected ones.
// Audit failures never fail the operation itself.
func writeAudit(ctx context.Context, repo AuditRepository, m *metrics.Metrics, caller Principal, action, resourceType string, resourceID int64, opErr error) {
	if repo == nil {
		return
	}

	entry := &domain.AuditLog{
		CustomerID:   caller.CustomerID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Status:       domain.AuditStatusCompleted,
		CreatedAt:    time.Now().UTC(),
	}

	if opErr != nil {
		entry.Status = domain.AuditStatusRejected
		entry.ErrorMessage = opErr.Error()
	}

	if err := repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to write audit log")
		return
	}

	if m != nil {
		m.AuditLogsCreated.WithLabelValues(action, string(entry.Status)).Inc()
	}
}
