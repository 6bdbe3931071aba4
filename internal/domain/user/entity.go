package user

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// IsManagerial reports whether the role may reach the reconciliation,
// overtime and payroll surfaces.
func (r Role) IsManagerial() bool {
	return r == RoleOwner || r == RoleManager
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	StaffID      *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
