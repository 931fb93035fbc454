package salary

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateSalaryRequest struct {
	EmployeeID  string  `json:"employee_id"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	BaseSalary  string  `json:"base_salary"`
	Allowance   string  `json:"allowance"`
	Deduction   string  `json:"deduction"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateSalaryRequest) Rules() []validator.Rule {
	nonNegative := func(s string) bool {
		d, err := decimal.NewFromString(s)
		return err == nil && !d.IsNegative()
	}
	currentYear := time.Now().Year()
	return []validator.Rule{
		{
			Field:   "employee_id",
			Message: "employee_id is required",
			Valid:   func() bool { return !validator.IsEmpty(r.EmployeeID) },
		},
		{
			Field:   "period_month",
			Message: "period month must be between 1 and 12",
			Valid:   func() bool { return r.PeriodMonth >= 1 && r.PeriodMonth <= 12 },
		},
		{
			Field:   "period_year",
			Message: "period year is out of range",
			Valid:   func() bool { return r.PeriodYear >= 2000 && r.PeriodYear <= currentYear+1 },
		},
		{
			Field:   "base_salary",
			Message: "base salary must be a non-negative decimal",
			Valid:   func() bool { return nonNegative(r.BaseSalary) },
		},
		{
			Field:   "allowance",
			Message: "allowance must be a non-negative decimal",
			Valid:   func() bool { return nonNegative(r.Allowance) },
		},
		{
			Field:   "deduction",
			Message: "deduction must be a non-negative decimal",
			Valid:   func() bool { return nonNegative(r.Deduction) },
		},
	}
}

type UpdateSalaryRequest struct {
	ID         string  `json:"id"`
	BaseSalary *string `json:"base_salary,omitempty"`
	Allowance  *string `json:"allowance,omitempty"`
	Deduction  *string `json:"deduction,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type SalaryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PeriodMonth  int     `json:"period_month"`
	PeriodYear   int     `json:"period_year"`
	BaseSalary   string  `json:"base_salary"`
	Allowance    string  `json:"allowance"`
	Deduction    string  `json:"deduction"`
	NetSalary    string  `json:"net_salary"`
	PaidAt       *string `json:"paid_at,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func NewSalaryResponse(s Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		PeriodMonth:  s.PeriodMonth,
		PeriodYear:   s.PeriodYear,
		BaseSalary:   s.BaseSalary.String(),
		Allowance:    s.Allowance.String(),
		Deduction:    s.Deduction.String(),
		NetSalary:    s.NetSalary.String(),
		Notes:        s.Notes,
	}
	if s.PaidAt != nil {
		paid := s.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paid
	}
	return resp
}

type ListSalariesFilter struct {
	EmployeeID  *string
	PeriodMonth *int
	PeriodYear  *int
	Page        int
	Limit       int
}

type ListSalariesResponse struct {
	Salaries   []SalaryResponse `json:"salaries"`
	TotalItems int64            `json:"total_items"`
}
