package report

import (
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate() error {
	currentYear := time.Now().Year()
	return validator.First(
		validator.Rule{
			Field:   "month",
			Message: "month must be between 1 and 12",
			Valid:   func() bool { return r.Month >= 1 && r.Month <= 12 },
		},
		validator.Rule{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
			Valid:   func() bool { return r.Year >= 2000 && r.Year <= currentYear+1 },
		},
	)
}

type YearRequest struct {
	Year int `json:"year"`
}

func (r *YearRequest) Validate() error {
	currentYear := time.Now().Year()
	return validator.First(
		validator.Rule{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
			Valid:   func() bool { return r.Year >= 2000 && r.Year <= currentYear+1 },
		},
	)
}

type AttendanceReport struct {
	PeriodMonth     int     `json:"period_month"`
	PeriodYear      int     `json:"period_year"`
	EmployeeID      string  `json:"employee_id"`
	ExpectedDays    int     `json:"expected_days"`
	PresentDays     int     `json:"present_days"`
	AttendanceRate  float64 `json:"attendance_rate"`
	PunctualityRate float64 `json:"punctuality_rate"`
	TotalWorkHours  float64 `json:"total_work_hours"`
	FullDays        int     `json:"full_days"`
	ShortDays       int     `json:"short_days"`
	EarlyLeaves     int     `json:"early_leaves"`
	GeneratedAt     string  `json:"generated_at"`
}

type WorkforceReport struct {
	TotalEmployees  int64            `json:"total_employees"`
	ActiveEmployees int64            `json:"active_employees"`
	Separations     int64            `json:"separations"`
	TurnoverRate    float64          `json:"turnover_rate"`
	ByStatus        map[string]int64 `json:"by_status"`
	GeneratedAt     string           `json:"generated_at"`
}

type FinanceSummaryReport struct {
	Year        int             `json:"year"`
	Income      string          `json:"income"`
	Expense     string          `json:"expense"`
	Balance     string          `json:"balance"`
	YoYGrowth   float64         `json:"yoy_growth"`
	CashFlow    []MonthlyFlow   `json:"cash_flow"`
	Categories  []CategoryShare `json:"categories"`
	GeneratedAt string          `json:"generated_at"`
}

type ProjectBudgetReport struct {
	ProjectID     string  `json:"project_id"`
	ProjectName   string  `json:"project_name"`
	Budget        string  `json:"budget"`
	ActualExpense string  `json:"actual_expense"`
	Variance      string  `json:"variance"`
	UsagePct      float64 `json:"usage_pct"`
}
