package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CheckConsistency scans for negative balances and for transfer groups
// whose legs are missing or disagree on amount.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (*domain.ConsistencyReport, error) {
	report := &domain.ConsistencyReport{CheckedAt: time.Now().UTC()}

	negatives, err := r.negativeBalances(ctx)
	if err != nil {
		return nil, err
	}
	report.NegativeBalances = negatives

	unbalanced, err := r.unbalancedTransfers(ctx)
	if err != nil {
		return nil, err
	}
	report.UnbalancedTransfers = unbalanced

	return report, nil
}

func (r *LedgerRepository) negativeBalances(ctx context.Context) ([]domain.NegativeBalance, error) {
	query := `SELECT id, balance FROM accounts WHERE balance < 0 ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var negatives []domain.NegativeBalance
	for rows.Next() {
		var nb domain.NegativeBalance
		var balance pgtype.Numeric

		if err := rows.Scan(&nb.AccountID, &balance); err != nil {
			return nil, err
		}

		nb.Balance = numericToDecimal(balance)
		negatives = append(negatives, nb)
	}

	return negatives, rows.Err()
}

// unbalancedTransfers finds transfer ids whose completed legs do not
// form a matching TRANSFER_TO / TRANSFER_FROM pair.
func (r *LedgerRepository) unbalancedTransfers(ctx context.Context) ([]string, error) {
	query := `
		SELECT transfer_id
		FROM transactions
		WHERE transfer_id IS NOT NULL AND status = $1
		GROUP BY transfer_id
		HAVING COUNT(*) <> 2 OR MIN(amount) <> MAX(amount)
		ORDER BY transfer_id
	`

	rows, err := r.pool.Query(ctx, query, domain.TransactionStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transferIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		transferIDs = append(transferIDs, id)
	}

	return transferIDs, rows.Err()
}
