package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID         int64           `json:"id"`
	Number     string          `json:"number"`
	CustomerID int64           `json:"customer_id"`
	Currency   string          `json:"currency"`
	Type       string          `json:"type"`
	Status     string          `json:"status"`
	Balance    decimal.Decimal `json:"balance"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:         a.ID,
		Number:     a.Number,
		CustomerID: a.CustomerID,
		Currency:   a.Currency,
		Type:       string(a.Type),
		Status:     string(a.Status),
		Balance:    a.Balance,
		Version:    a.Version,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction record in API responses.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	TransferID  string          `json:"transfer_id,omitempty"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		AccountID:   t.AccountID,
		TransferID:  t.TransferID,
		Type:        string(t.Type),
		Status:      string(t.Status),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// CardResponse represents a card in API responses. The card number is
// masked down to its last four digits.
type CardResponse struct {
	ID         int64     `json:"id"`
	Number     string    `json:"number"`
	AccountID  int64     `json:"account_id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	LockStatus string    `json:"lock_status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CardFromDomain converts domain card to response.
func CardFromDomain(c *domain.Card) *CardResponse {
	return &CardResponse{
		ID:         c.ID,
		Number:     MaskCardNumber(c.Number),
		AccountID:  c.AccountID,
		Type:       string(c.Type),
		Status:     string(c.Status),
		LockStatus: string(c.LockStatus),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// CardsFromDomain converts domain cards to responses.
func CardsFromDomain(cards []*domain.Card) []*CardResponse {
	result := make([]*CardResponse, len(cards))
	for i, c := range cards {
		result[i] = CardFromDomain(c)
	}
	return result
}

// ListCardsResponse wraps a card listing.
type ListCardsResponse struct {
	Cards []*CardResponse `json:"cards"`
	Total int64           `json:"total"`
}

// MaskCardNumber hides all but the last four digits of a card number.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	masked := make([]byte, len(number))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(masked)-4:], number[len(number)-4:])
	return string(masked)
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerFromDomain converts domain customer to response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		Name:      c.Name,
		Role:      string(c.Role),
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token    string            `json:"token"`
	Customer *CustomerResponse `json:"customer"`
}

// AuditLogResponse represents an audit log entry in API responses.
type AuditLogResponse struct {
	ID           string    `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   int64     `json:"resource_id"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditLogFromDomain converts domain audit log to response.
func AuditLogFromDomain(l *domain.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:           l.ID,
		CustomerID:   l.CustomerID,
		Action:       l.Action,
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		Status:       l.Status,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    l.CreatedAt,
	}
}

// AuditLogsFromDomain converts domain audit logs to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = AuditLogFromDomain(l)
	}
	return result
}

// NegativeBalanceResponse identifies an account with a negative balance.
type NegativeBalanceResponse struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// ConsistencyReportResponse represents a ledger integrity check result.
type ConsistencyReportResponse struct {
	Consistent          bool                      `json:"consistent"`
	NegativeBalances    []NegativeBalanceResponse `json:"negative_balances"`
	UnbalancedTransfers []string                  `json:"unbalanced_transfers"`
	CheckedAt           time.Time                 `json:"checked_at"`
}

// ConsistencyReportFromDomain converts domain report to response.
func ConsistencyReportFromDomain(r *domain.ConsistencyReport) *ConsistencyReportResponse {
	negatives := make([]NegativeBalanceResponse, len(r.NegativeBalances))
	for i, nb := range r.NegativeBalances {
		negatives[i] = NegativeBalanceResponse{AccountID: nb.AccountID, Balance: nb.Balance}
	}

	unbalanced := r.UnbalancedTransfers
	if unbalanced == nil {
		unbalanced = []string{}
	}

	return &ConsistencyReportResponse{
		Consistent:          r.Consistent(),
		NegativeBalances:    negatives,
		UnbalancedTransfers: unbalanced,
		CheckedAt:           r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
