package employee

import (
	"context"
)

// EmployeeRepository is the directory collaborator.
type EmployeeRepository interface {
	// Create inserts a new employee record.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee. A missing row surfaces as
	// ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// Update persists field edits.
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee record.
	Delete(ctx context.Context, id string) error

	// List retrieves employees with filters and pagination.
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, int64, error)

	// Uniqueness checks, parameterized with an exclude-id so insert
	// (empty excludeID) and update (self id) share one query each.
	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID string) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeID string) (bool, error)
	NationalIDExists(ctx context.Context, nationalID string, excludeID string) (bool, error)

	// ExistsByID is the cheap referential check used by finance
	// relationship validation.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Count seeds the employee code generator.
	Count(ctx context.Context) (int64, error)
}
