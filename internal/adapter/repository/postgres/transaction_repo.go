package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

const transactionColumns = `id, account_id, transfer_id, type, status, amount, description, created_at, updated_at`

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a transaction record inside a transaction and assigns
// its ID.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transactions (account_id, transfer_id, type, status, amount, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var transferID *string
	if txn.TransferID != "" {
		transferID = &txn.TransferID
	}

	return pgxTx.QueryRow(ctx, query,
		txn.AccountID,
		transferID,
		txn.Type,
		txn.Status,
		decimalToNumeric(txn.Amount),
		txn.Description,
		txn.CreatedAt,
		txn.UpdatedAt,
	).Scan(&txn.ID)
}

// UpdateStatus moves a transaction record to the given status inside a
// transaction.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id int64, status domain.TransactionStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE transactions SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := pgxTx.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d: %w", id, domain.ErrTransactionNotFound)
	}

	return nil
}

// GetByID retrieves a transaction record by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrTransactionNotFound)
	}

	return txn, err
}

// ListByAccount lists transaction records for an account, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var transferID *string
	var amount pgtype.Numeric

	err := row.Scan(
		&txn.ID,
		&txn.AccountID,
		&transferID,
		&txn.Type,
		&txn.Status,
		&amount,
		&txn.Description,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if transferID != nil {
		txn.TransferID = *transferID
	}
	txn.Amount = numericToDecimal(amount)

	return &txn, nil
}
