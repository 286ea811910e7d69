package domain

import "time"

// Customer represents an account holder or a back-office administrator.
type Customer struct {
	ID             int64
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a customer's access level.
type Role string

const (
	// RoleAdmin bypasses ownership checks; credential, status and funds
	// checks still apply.
	RoleAdmin Role = "admin"

	// RoleCustomer can only operate on accounts and cards they own.
	RoleCustomer Role = "customer"
)

var validRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleCustomer: true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// IsAdmin checks if the role grants administrator capabilities.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
