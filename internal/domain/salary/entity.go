package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is one employee's pay record for a month. Net is a derived
// field: base + allowance - deduction.
type Salary struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	BaseSalary  decimal.Decimal
	Allowance   decimal.Decimal
	Deduction   decimal.Decimal
	NetSalary   decimal.Decimal
	PaidAt      *time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

// Net computes the derived net amount.
func Net(base, allowance, deduction decimal.Decimal) decimal.Decimal {
	return base.Add(allowance).Sub(deduction)
}
