package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// RegisterRequest represents a request to register a customer.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     domain.RoleCustomer,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	Currency string `json:"currency"`
	Type     string `json:"type"`
}

// ToUseCaseInput converts to use case input for the given caller.
func (r *OpenAccountRequest) ToUseCaseInput(caller usecase.Principal) usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		Caller:   caller,
		Currency: r.Currency,
		Type:     domain.AccountType(r.Type),
	}
}

// TransferRequest represents a request to transfer between accounts. The
// destination is given either by id or by account number.
type TransferRequest struct {
	SourceAccountID          int64           `json:"source_account_id"`
	DestinationAccountID     int64           `json:"destination_account_id,omitempty"`
	DestinationAccountNumber string          `json:"destination_account_number,omitempty"`
	Amount                   decimal.Decimal `json:"amount"`
	Description              string          `json:"description"`
	Password                 string          `json:"password"`
}

// ToUseCaseInput converts to use case input for the given caller.
func (r *TransferRequest) ToUseCaseInput(caller usecase.Principal) usecase.TransferInput {
	return usecase.TransferInput{
		Caller:                   caller,
		SourceAccountID:          r.SourceAccountID,
		DestinationAccountID:     r.DestinationAccountID,
		DestinationAccountNumber: r.DestinationAccountNumber,
		Amount:                   r.Amount,
		Description:              r.Description,
		Password:                 r.Password,
	}
}

// DepositRequest represents a request to deposit into an account.
type DepositRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Password string          `json:"password"`
}

// ToUseCaseInput converts to use case input for the given caller and account.
func (r *DepositRequest) ToUseCaseInput(caller usecase.Principal, accountID int64) usecase.DepositInput {
	return usecase.DepositInput{
		Caller:    caller,
		AccountID: accountID,
		Amount:    r.Amount,
		Password:  r.Password,
	}
}

// ChargeRequest represents a request to charge a card.
type ChargeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Password    string          `json:"password,omitempty"`
}

// ToUseCaseInput converts to use case input for the given caller and card.
func (r *ChargeRequest) ToUseCaseInput(caller usecase.Principal, cardID int64) usecase.ChargeInput {
	return usecase.ChargeInput{
		Caller:      caller,
		CardID:      cardID,
		Amount:      r.Amount,
		Description: r.Description,
		Type:        domain.TransactionType(r.Type),
		Password:    r.Password,
	}
}

// IssueCardRequest represents a request to issue a card against an account.
type IssueCardRequest struct {
	Type string `json:"type"`
}

// ToUseCaseInput converts to use case input for the given caller and account.
func (r *IssueCardRequest) ToUseCaseInput(caller usecase.Principal, accountID int64) usecase.IssueCardInput {
	return usecase.IssueCardInput{
		Caller:    caller,
		AccountID: accountID,
		Type:      domain.CardType(r.Type),
	}
}
