package employee

import (
	"time"
)

// Role is an employee's position in the store.
type Role string

const (
	RoleIntern  Role = "INTERN"
	RoleSeller  Role = "SELLER"
	RoleManager Role = "MANAGER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleIntern, RoleSeller, RoleManager:
		return true
	}
	return false
}

// Roles returns all employee roles.
func Roles() []Role {
	return []Role{RoleIntern, RoleSeller, RoleManager}
}

// Employee is a store staff member. BossID points at the supervising
// employee and is zero for the top of the hierarchy.
type Employee struct {
	ID           uint
	FirstName    string
	LastName     string
	EmailAddress string
	Role         Role
	BossID       uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewEmployee creates an employee.
func NewEmployee(firstName, lastName, email string, role Role, bossID uint) *Employee {
	return &Employee{
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: email,
		Role:         role,
		BossID:       bossID,
	}
}

// FullName returns "First Last" for display.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
