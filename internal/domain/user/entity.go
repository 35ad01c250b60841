package user

import (
	"time"
)

// Role is the closed set of account roles. BUYER accounts map 1:1 to a Buyer
// record and may purchase; MANAGER accounts administer the catalog.
type Role string

const (
	RoleBuyer   Role = "BUYER"
	RoleManager Role = "MANAGER"
)

// Valid reports whether r is a declared role.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleManager
}

// User is the account aggregate root. Password holds the bcrypt hash, never
// plaintext. The linked Buyer or Employee record is resolved by user id from
// their own repositories.
type User struct {
	ID           uint
	EmailAddress string
	Password     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user account. hashedPassword must already be a bcrypt hash.
func NewUser(emailAddress, hashedPassword string, role Role) *User {
	now := time.Now()
	return &User{
		EmailAddress: emailAddress,
		Password:     hashedPassword,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
