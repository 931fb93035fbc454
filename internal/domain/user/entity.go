package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access, manages users and reference data
	RoleManager Role = "manager" // Can approve finance and view all records
	RoleStaff   Role = "staff"   // Records transactions and own attendance
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanApprove checks if user can approve finance transactions
func (u *User) CanApprove() bool {
	return u.IsManager()
}

// IsValidRole reports membership in the closed role set.
func IsValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleStaff
}
