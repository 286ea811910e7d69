package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

const cardColumns = `id, number, account_id, type, status, lock_status, created_at, updated_at`

// CardRepository implements usecase.CardRepository.
type CardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository creates a new CardRepository.
func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

// Create inserts a new card inside a transaction and assigns its ID.
func (r *CardRepository) Create(ctx context.Context, tx usecase.Transaction, card *domain.Card) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO cards (number, account_id, type, status, lock_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return pgxTx.QueryRow(ctx, query,
		card.Number,
		card.AccountID,
		card.Type,
		card.Status,
		card.LockStatus,
		card.CreatedAt,
		card.UpdatedAt,
	).Scan(&card.ID)
}

// GetByID retrieves a card by ID.
func (r *CardRepository) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", id, domain.ErrCardNotFound)
	}

	return card, err
}

// GetByIDForUpdate retrieves a card by ID with a row lock inside the
// caller's transaction. Charges hold the lock so concurrent status
// changes cannot land mid-charge.
func (r *CardRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Card, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1 FOR UPDATE`

	card, err := scanCard(pgxTx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", id, domain.ErrCardNotFound)
	}

	return card, err
}

// CountEnabledByAccount counts ENABLED cards linked to an account. Runs
// inside the caller's transaction so the count is stable under the
// account row lock.
func (r *CardRepository) CountEnabledByAccount(ctx context.Context, tx usecase.Transaction, accountID int64) (int, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT COUNT(*) FROM cards WHERE account_id = $1 AND status = $2`

	var count int
	err := pgxTx.QueryRow(ctx, query, accountID, domain.CardStatusEnabled).Scan(&count)

	return count, err
}

// UpdateStatus updates the administrative status of a card.
func (r *CardRepository) UpdateStatus(ctx context.Context, id int64, status domain.CardStatus, updatedAt time.Time) error {
	query := `UPDATE cards SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %d: %w", id, domain.ErrCardNotFound)
	}

	return nil
}

// UpdateLockStatus updates the customer-settable lock of a card.
func (r *CardRepository) UpdateLockStatus(ctx context.Context, id int64, lockStatus domain.CardLockStatus, updatedAt time.Time) error {
	query := `UPDATE cards SET lock_status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, lockStatus, updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %d: %w", id, domain.ErrCardNotFound)
	}

	return nil
}

// ListByAccount lists cards linked to an account with pagination.
func (r *CardRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card

	err := row.Scan(
		&card.ID,
		&card.Number,
		&card.AccountID,
		&card.Type,
		&card.Status,
		&card.LockStatus,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &card, nil
}
