package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// CardUseCase executes charges against the account behind a card and
// manages the card lifecycle.
type CardUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	cardRepo    CardRepository
	txnRepo     TransactionRepository
	auditRepo   AuditRepository
	authorizer  *Authorizer
	ledger      *Ledger
	numGen      NumberGenerator
	cache       Cache
	metrics     *metrics.Metrics
}

// NewCardUseCase creates a new CardUseCase. auditRepo, cache and m may
// be nil to disable auditing, read caching and metrics.
func NewCardUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	cardRepo CardRepository,
	txnRepo TransactionRepository,
	auditRepo AuditRepository,
	authorizer *Authorizer,
	ledger *Ledger,
	numGen NumberGenerator,
	cache Cache,
	m *metrics.Metrics,
) *CardUseCase {
	return &CardUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		txnRepo:     txnRepo,
		auditRepo:   auditRepo,
		authorizer:  authorizer,
		ledger:      ledger,
		numGen:      numGen,
		cache:       cache,
		metrics:     m,
	}
}

// ChargeInput represents input for a card charge.
type ChargeInput struct {
	Caller      Principal
	CardID      int64
	Amount      decimal.Decimal
	Description string
	Type        domain.TransactionType
	Password    string
}

// Charge debits the account behind the card as one unit of work.
// CARD_CHARGE (card-not-present) requires the caller's password;
// WITHDRAWAL does not.
func (uc *CardUseCase) Charge(ctx context.Context, input ChargeInput) (*domain.Transaction, error) {
	txn, err := uc.charge(ctx, input)
	writeAudit(ctx, uc.auditRepo, uc.metrics, input.Caller, domain.AuditActionCardCharge, "card", input.CardID, err)

	if uc.metrics != nil {
		outcome := "completed"
		if err != nil {
			outcome = "rejected"
		}
		uc.metrics.CardCharges.WithLabelValues(string(input.Type), outcome).Inc()
	}

	return txn, err
}

func (uc *CardUseCase) charge(ctx context.Context, input ChargeInput) (*domain.Transaction, error) {
	if !input.Type.IsCardType() {
		return nil, fmt.Errorf("%s: %w", input.Type, domain.ErrInvalidTransactionType)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The card row is locked so a concurrent disable or customer lock
	// cannot land between the status check and the commit.
	card, err := uc.cardRepo.GetByIDForUpdate(ctx, tx, input.CardID)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, card.AccountID)
	if err != nil {
		return nil, err
	}

	err = uc.authorizer.Authorize(ctx, input.Caller, AuthorizeParams{
		Account:         account,
		Card:            card,
		Password:        input.Password,
		RequirePassword: input.Type == domain.TransactionTypeCardCharge,
		DebitAmount:     input.Amount,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	txn := &domain.Transaction{
		AccountID:   account.ID,
		Type:        input.Type,
		Status:      domain.TransactionStatusPending,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := uc.ledger.Debit(ctx, tx, account, input.Amount, now); err != nil {
		return nil, err
	}

	if err := uc.txnRepo.UpdateStatus(ctx, tx, txn.ID, domain.TransactionStatusCompleted, now); err != nil {
		return nil, err
	}
	txn.Status = domain.TransactionStatusCompleted

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, accountCacheKey(account.ID))
	}

	return txn, nil
}

// IssueCardInput represents input for issuing a card.
type IssueCardInput struct {
	Caller    Principal
	AccountID int64
	Type      domain.CardType
}

// IssueCard creates an ENABLED card against an OPEN account. The account
// row is locked so the card-count cap cannot be raced past.
func (uc *CardUseCase) IssueCard(ctx context.Context, input IssueCardInput) (*domain.Card, error) {
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%s: %w", input.Type, domain.ErrInvalidCardType)
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	err = uc.authorizer.Authorize(ctx, input.Caller, AuthorizeParams{Account: account})
	if err != nil {
		return nil, err
	}

	enabled, err := uc.cardRepo.CountEnabledByAccount(ctx, tx, account.ID)
	if err != nil {
		return nil, err
	}

	if enabled >= domain.MaxEnabledCardsPerAccount {
		return nil, fmt.Errorf("account %d: %w", account.ID, domain.ErrCardLimitReached)
	}

	now := time.Now().UTC()

	card := &domain.Card{
		Number:     uc.numGen.CardNumber(),
		AccountID:  account.ID,
		Type:       input.Type,
		Status:     domain.CardStatusEnabled,
		LockStatus: domain.CardUnlocked,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.cardRepo.Create(ctx, tx, card); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CardsIssued.Inc()
	}

	return card, nil
}

// CancelCard disables a card. Cancellation is irreversible; there is no
// re-enable path.
func (uc *CardUseCase) CancelCard(ctx context.Context, caller Principal, cardID int64) (*domain.Card, error) {
	card, _, err := uc.loadOwnedCard(ctx, caller, cardID)
	if err != nil {
		return nil, err
	}

	if card.Status == domain.CardStatusDisabled {
		return nil, fmt.Errorf("card %d: %w", card.ID, domain.ErrCardDisabled)
	}

	now := time.Now().UTC()
	if err := uc.cardRepo.UpdateStatus(ctx, card.ID, domain.CardStatusDisabled, now); err != nil {
		return nil, err
	}

	card.Status = domain.CardStatusDisabled
	card.UpdatedAt = now

	if uc.metrics != nil {
		uc.metrics.CardsCancelled.Inc()
	}

	return card, nil
}

// LockCard places the customer-settable hold on a card.
func (uc *CardUseCase) LockCard(ctx context.Context, caller Principal, cardID int64) (*domain.Card, error) {
	return uc.setLockStatus(ctx, caller, cardID, domain.CardLocked)
}

// UnlockCard releases the customer-settable hold.
func (uc *CardUseCase) UnlockCard(ctx context.Context, caller Principal, cardID int64) (*domain.Card, error) {
	return uc.setLockStatus(ctx, caller, cardID, domain.CardUnlocked)
}

func (uc *CardUseCase) setLockStatus(ctx context.Context, caller Principal, cardID int64, lockStatus domain.CardLockStatus) (*domain.Card, error) {
	card, _, err := uc.loadOwnedCard(ctx, caller, cardID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.cardRepo.UpdateLockStatus(ctx, card.ID, lockStatus, now); err != nil {
		return nil, err
	}

	card.LockStatus = lockStatus
	card.UpdatedAt = now

	return card, nil
}

// ListCards lists cards linked to an account the caller owns.
func (uc *CardUseCase) ListCards(ctx context.Context, caller Principal, accountID int64, limit, offset int) ([]*domain.Card, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !caller.Admin && !account.OwnedBy(caller.CustomerID) {
		return nil, fmt.Errorf("account %d: %w", account.ID, domain.ErrNotAccountOwner)
	}

	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return uc.cardRepo.ListByAccount(ctx, accountID, limit, offset)
}

// loadOwnedCard resolves a card and verifies the caller owns the linked
// account. Lifecycle operations skip the account-status check so a card
// on a suspended account can still be locked or cancelled.
func (uc *CardUseCase) loadOwnedCard(ctx context.Context, caller Principal, cardID int64) (*domain.Card, *domain.Account, error) {
	card, err := uc.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, nil, err
	}

	account, err := uc.accountRepo.GetByID(ctx, card.AccountID)
	if err != nil {
		return nil, nil, err
	}

	if !caller.Admin && !account.OwnedBy(caller.CustomerID) {
		return nil, nil, fmt.Errorf("account %d: %w", account.ID, domain.ErrNotAccountOwner)
	}

	return card, account, nil
}
