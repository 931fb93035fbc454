package report

import "context"

// ReferenceData supplies the employment status universe consumed by
// the workforce summary.
type ReferenceData interface {
	EmploymentStatuses() []string
	IsActiveEmployment(status string) bool
	IsSeparatedEmployment(status string) bool
}

// Service assembles reports from already-persisted collections. All
// derived numbers come from the pure aggregation functions in this
// package.
type Service interface {
	// EmployeeAttendance computes attendance and punctuality rates for
	// one employee over a month.
	EmployeeAttendance(ctx context.Context, employeeID string, req PeriodRequest) (AttendanceReport, error)

	// FinanceSummary computes yearly totals, the monthly cash-flow
	// series, the category breakdown and year-over-year growth.
	FinanceSummary(ctx context.Context, req YearRequest) (FinanceSummaryReport, error)

	// ProjectBudgets compares each project budget against approved
	// expenses linked to it.
	ProjectBudgets(ctx context.Context) ([]ProjectBudgetReport, error)

	// WorkforceSummary computes headcounts per employment status and
	// the turnover rate.
	WorkforceSummary(ctx context.Context) (WorkforceReport, error)
}
