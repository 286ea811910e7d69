package domain

import "errors"

var (
	// Lookup errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrCardNotFound        = errors.New("card not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Authorization errors
	ErrNotAccountOwner    = errors.New("account does not belong to caller")
	ErrCredentialMismatch = errors.New("password does not match")
	ErrAccountNotOpen     = errors.New("account is not open")
	ErrCardDisabled       = errors.New("card is disabled")
	ErrCardLocked         = errors.New("card is locked")
	ErrCardNotActive      = errors.New("card is not active")

	// Money movement errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrCurrencyMismatch  = errors.New("cannot transfer between different currencies")
	ErrEmptyDescription  = errors.New("description must not be empty")

	// Card lifecycle errors
	ErrCardLimitReached = errors.New("account reached the active card limit")
	ErrInvalidCardType  = errors.New("unsupported card type")

	// Account lifecycle errors
	ErrInvalidAccountType = errors.New("unsupported account type")

	// Contract errors
	ErrInvalidTransactionType = errors.New("unsupported transaction type")
)

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
