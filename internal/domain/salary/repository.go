package salary

import "context"

type SalaryRepository interface {
	Create(ctx context.Context, s Salary) (Salary, error)
	GetByID(ctx context.Context, id string) (Salary, error)
	Update(ctx context.Context, s Salary) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListSalariesFilter) ([]Salary, int64, error)

	// PeriodExists guards the one-record-per-employee-per-month rule.
	PeriodExists(ctx context.Context, employeeID string, month, year int) (bool, error)
}
