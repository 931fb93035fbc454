package report

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/project"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendance.SessionRepository
	finance.TransactionRepository
	project.ProjectRepository
	employeeRepo employee.EmployeeRepository
	catalog      report.ReferenceData
	now          func() time.Time
}

func NewReportService(
	sessionRepo attendance.SessionRepository,
	transactionRepo finance.TransactionRepository,
	projectRepo project.ProjectRepository,
	employeeRepo employee.EmployeeRepository,
	catalog report.ReferenceData,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		SessionRepository:     sessionRepo,
		TransactionRepository: transactionRepo,
		ProjectRepository:     projectRepo,
		employeeRepo:          employeeRepo,
		catalog:               catalog,
		now:                   time.Now,
	}
}

// EmployeeAttendance implements report.Service.
func (s *ReportServiceImpl) EmployeeAttendance(ctx context.Context, employeeID string, req report.PeriodRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	exists, err := s.employeeRepo.ExistsByID(ctx, employeeID)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return report.AttendanceReport{}, employee.ErrEmployeeNotFound
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	sessions, _, err := s.SessionRepository.List(ctx, attendance.ListSessionsFilter{
		EmployeeID: employeeID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	fullDays, shortDays, earlyLeaves := 0, 0, 0
	for _, sess := range sessions {
		switch sess.Status {
		case attendance.StatusFullDay:
			fullDays++
		case attendance.StatusShortDay:
			shortDays++
		case attendance.StatusEarlyLeave:
			earlyLeaves++
		}
	}

	expected := weekdaysIn(req.Year, time.Month(req.Month))
	present := len(sessions)

	return report.AttendanceReport{
		PeriodMonth:     req.Month,
		PeriodYear:      req.Year,
		EmployeeID:      employeeID,
		ExpectedDays:    expected,
		PresentDays:     present,
		AttendanceRate:  report.AttendanceRate(present, expected),
		PunctualityRate: report.PunctualityRate(sessions),
		TotalWorkHours:  report.TotalWorkingHours(sessions),
		FullDays:        fullDays,
		ShortDays:       shortDays,
		EarlyLeaves:     earlyLeaves,
		GeneratedAt:     s.now().Format(time.RFC3339),
	}, nil
}

// weekdaysIn counts Monday through Friday dates in a month.
func weekdaysIn(year int, month time.Month) int {
	days := 0
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == month {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// FinanceSummary implements report.Service.
func (s *ReportServiceImpl) FinanceSummary(ctx context.Context, req report.YearRequest) (report.FinanceSummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.FinanceSummaryReport{}, err
	}

	from := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0).Add(-time.Nanosecond)
	txs, err := s.TransactionRepository.ListByPeriod(ctx, from, to)
	if err != nil {
		return report.FinanceSummaryReport{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	prevFrom := from.AddDate(-1, 0, 0)
	prevTo := from.Add(-time.Nanosecond)
	prevTxs, err := s.TransactionRepository.ListByPeriod(ctx, prevFrom, prevTo)
	if err != nil {
		return report.FinanceSummaryReport{}, fmt.Errorf("failed to list prior-year transactions: %w", err)
	}

	totals := report.TotalsByType(txs)
	prevTotals := report.TotalsByType(prevTxs)

	return report.FinanceSummaryReport{
		Year:        req.Year,
		Income:      totals.Income.StringFixed(2),
		Expense:     totals.Expense.StringFixed(2),
		Balance:     totals.Balance.StringFixed(2),
		YoYGrowth:   report.YoYGrowth(totals.Income, prevTotals.Income),
		CashFlow:    report.MonthlyCashFlow(txs, req.Year),
		Categories:  report.CategoryBreakdown(txs),
		GeneratedAt: s.now().Format(time.RFC3339),
	}, nil
}

// ProjectBudgets implements report.Service.
func (s *ReportServiceImpl) ProjectBudgets(ctx context.Context) ([]report.ProjectBudgetReport, error) {
	projects, _, err := s.ProjectRepository.List(ctx, project.ListProjectsFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	reports := make([]report.ProjectBudgetReport, 0, len(projects))
	for _, p := range projects {
		txs, _, err := s.TransactionRepository.List(ctx, finance.ListTransactionsFilter{
			ProjectID: &p.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list project transactions: %w", err)
		}

		actual := report.TotalsByType(txs).Expense
		variance, usagePct := report.BudgetVariance(p.Budget, actual)

		reports = append(reports, report.ProjectBudgetReport{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			Budget:        p.Budget.StringFixed(2),
			ActualExpense: actual.StringFixed(2),
			Variance:      variance.StringFixed(2),
			UsagePct:      usagePct,
		})
	}
	return reports, nil
}

// WorkforceSummary implements report.Service. Headcounts come from the
// status-filtered list totals so nothing is loaded beyond the counts.
func (s *ReportServiceImpl) WorkforceSummary(ctx context.Context) (report.WorkforceReport, error) {
	out := report.WorkforceReport{ByStatus: make(map[string]int64)}

	for _, status := range s.catalog.EmploymentStatuses() {
		st := status
		_, total, err := s.employeeRepo.List(ctx, employee.ListEmployeesFilter{
			Status: &st,
			Page:   1,
			Limit:  1,
		})
		if err != nil {
			return report.WorkforceReport{}, fmt.Errorf("failed to count employees: %w", err)
		}

		out.ByStatus[status] = total
		out.TotalEmployees += total
		if s.catalog.IsActiveEmployment(status) {
			out.ActiveEmployees += total
		}
		if s.catalog.IsSeparatedEmployment(status) {
			out.Separations += total
		}
	}

	out.TurnoverRate = report.TurnoverRate(int(out.Separations), int(out.TotalEmployees))
	out.GeneratedAt = s.now().Format(time.RFC3339)
	return out, nil
}
