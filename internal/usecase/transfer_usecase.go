package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// TransferUseCase executes two-leg transfers and single-leg deposits as
// one unit of work each.
type TransferUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	txnRepo      TransactionRepository
	customerRepo CustomerRepository
	auditRepo    AuditRepository
	authorizer   *Authorizer
	ledger       *Ledger
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. auditRepo, cache and
// m may be nil to disable auditing, read caching and metrics.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	customerRepo CustomerRepository,
	auditRepo AuditRepository,
	authorizer *Authorizer,
	ledger *Ledger,
	idGen IDGenerator,
	cache Cache,
	m *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		authorizer:   authorizer,
		ledger:       ledger,
		idGen:        idGen,
		cache:        cache,
		metrics:      m,
	}
}

// TransferInput represents input for a transfer. The destination is
// identified either by account ID or by account number.
type TransferInput struct {
	Caller                   Principal
	SourceAccountID          int64
	DestinationAccountID     int64
	DestinationAccountNumber string
	Amount                   decimal.Decimal
	Description              string
	Password                 string
}

// Transfer moves Amount from the source account to the destination
// account. Both legs commit together or not at all; on any failure no
// balance change and no transaction record persists. The returned record
// is the source-side TRANSFER_TO leg.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.Transaction, error) {
	start := time.Now()

	txn, err := uc.transfer(ctx, input)
	writeAudit(ctx, uc.auditRepo, uc.metrics, input.Caller, domain.AuditActionTransfer, "account", input.SourceAccountID, err)

	if uc.metrics != nil {
		if err != nil {
			uc.metrics.TransfersRejected.WithLabelValues(rejectionReason(err)).Inc()
		} else {
			uc.metrics.TransfersCompleted.Inc()
			uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
			uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
		}
	}

	return txn, err
}

// rejectionReason buckets a rejection into a low-cardinality label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrNotAccountOwner), errors.Is(err, domain.ErrCredentialMismatch):
		return "unauthorized"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAccountNotOpen):
		return "account_not_open"
	case errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrEmptyDescription):
		return "validation"
	default:
		return "internal"
	}
}

func (uc *TransferUseCase) transfer(ctx context.Context, input TransferInput) (*domain.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	// The source must exist before the transfer can be rejected for
	// anything that compares it to the destination.
	if _, err := uc.accountRepo.GetByID(ctx, input.SourceAccountID); err != nil {
		return nil, err
	}

	destinationID := input.DestinationAccountID
	if input.DestinationAccountNumber != "" {
		destination, err := uc.accountRepo.GetByNumber(ctx, input.DestinationAccountNumber)
		if err != nil {
			return nil, err
		}

		destinationID = destination.ID
	}

	if destinationID == input.SourceAccountID {
		return nil, domain.ErrSameAccount
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock both accounts in ascending id order (deadlock prevention).
	ids := []int64{input.SourceAccountID, destinationID}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	var source, destination *domain.Account
	for _, account := range accounts {
		switch account.ID {
		case input.SourceAccountID:
			source = account
		case destinationID:
			destination = account
		}
	}

	if source == nil {
		return nil, fmt.Errorf("account %d: %w", input.SourceAccountID, domain.ErrAccountNotFound)
	}

	if destination == nil {
		return nil, fmt.Errorf("account %d: %w", destinationID, domain.ErrAccountNotFound)
	}

	// The source leg requires full authorization by its owner. The
	// destination leg is only checked for usability.
	err = uc.authorizer.Authorize(ctx, input.Caller, AuthorizeParams{
		Account:         source,
		Password:        input.Password,
		RequirePassword: true,
		DebitAmount:     input.Amount,
	})
	if err != nil {
		return nil, err
	}

	if err := destination.ValidateMutable(); err != nil {
		return nil, err
	}

	if source.Currency != destination.Currency {
		return nil, domain.ErrCurrencyMismatch
	}

	owner, err := uc.customerRepo.GetByID(ctx, source.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transferID := uc.idGen.Generate()

	sourceTxn := &domain.Transaction{
		AccountID:   source.ID,
		TransferID:  transferID,
		Type:        domain.TransactionTypeTransferTo,
		Status:      domain.TransactionStatusPending,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.txnRepo.Create(ctx, tx, sourceTxn); err != nil {
		return nil, err
	}

	if err := uc.ledger.Debit(ctx, tx, source, input.Amount, now); err != nil {
		return nil, err
	}

	if err := uc.txnRepo.UpdateStatus(ctx, tx, sourceTxn.ID, domain.TransactionStatusCompleted, now); err != nil {
		return nil, err
	}
	sourceTxn.Status = domain.TransactionStatusCompleted

	destinationTxn := &domain.Transaction{
		AccountID:   destination.ID,
		TransferID:  transferID,
		Type:        domain.TransactionTypeTransferFrom,
		Status:      domain.TransactionStatusPending,
		Amount:      input.Amount,
		Description: fmt.Sprintf("Transfer from %s", owner.Name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.txnRepo.Create(ctx, tx, destinationTxn); err != nil {
		return nil, err
	}

	if err := uc.ledger.Credit(ctx, tx, destination, input.Amount, now); err != nil {
		return nil, err
	}

	if err := uc.txnRepo.UpdateStatus(ctx, tx, destinationTxn.ID, domain.TransactionStatusCompleted, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.invalidateAccounts(ctx, source.ID, destination.ID)

	return sourceTxn, nil
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	Caller    Principal
	AccountID int64
	Amount    decimal.Decimal
	Password  string
}

// Deposit credits an account with Amount as one unit of work.
func (uc *TransferUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	txn, err := uc.deposit(ctx, input)
	writeAudit(ctx, uc.auditRepo, uc.metrics, input.Caller, domain.AuditActionDeposit, "account", input.AccountID, err)

	if err == nil && uc.metrics != nil {
		uc.metrics.DepositsCompleted.Inc()
	}

	return txn, err
}

func (uc *TransferUseCase) deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
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

	err = uc.authorizer.Authorize(ctx, input.Caller, AuthorizeParams{
		Account:         account,
		Password:        input.Password,
		RequirePassword: true,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	txn := &domain.Transaction{
		AccountID:   account.ID,
		Type:        domain.TransactionTypeDeposit,
		Status:      domain.TransactionStatusPending,
		Amount:      input.Amount,
		Description: "Deposit",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := uc.ledger.Credit(ctx, tx, account, input.Amount, now); err != nil {
		return nil, err
	}

	if err := uc.txnRepo.UpdateStatus(ctx, tx, txn.ID, domain.TransactionStatusCompleted, now); err != nil {
		return nil, err
	}
	txn.Status = domain.TransactionStatusCompleted

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.invalidateAccounts(ctx, account.ID)

	return txn, nil
}

func (uc *TransferUseCase) invalidateAccounts(ctx context.Context, ids ...int64) {
	if uc.cache == nil {
		return
	}

	for _, id := range ids {
		_ = uc.cache.Delete(ctx, accountCacheKey(id))
	}
}
