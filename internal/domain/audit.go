package domain

import "time"

// Audit actions for money movement attempts.
const (
	AuditActionTransfer   = "transfer"
	AuditActionDeposit    = "deposit"
	AuditActionCardCharge = "card_charge"
)

// Audit outcomes.
const (
	AuditStatusCompleted = "completed"
	AuditStatusRejected  = "rejected"
)

// AuditLog records a money-movement attempt and its outcome. Unlike
// transactions, rejected attempts are recorded too.
type AuditLog struct {
	ID           string
	CustomerID   int64
	Action       string
	ResourceType string
	ResourceID   int64
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
}

// AuditFilter filters audit log listings.
type AuditFilter struct {
	CustomerID int64
	Action     string
	Limit      int
	Offset     int
}
