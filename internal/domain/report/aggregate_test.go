package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedTx(txType finance.Type, category, amount string, date time.Time) finance.Transaction {
	return finance.Transaction{
		Type:     txType,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
		Status:   finance.StatusApproved,
	}
}

func TestRate_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Rate(5, 0))
	assert.Equal(t, 0.0, AttendanceRate(0, 0))
	assert.Equal(t, 0.0, PunctualityRate(nil))
}

func TestAttendanceRate(t *testing.T) {
	assert.InDelta(t, 50.0, AttendanceRate(11, 22), 0.001)
	assert.InDelta(t, 100.0, AttendanceRate(20, 20), 0.001)
}

func TestTurnoverRate(t *testing.T) {
	assert.InDelta(t, 10.0, TurnoverRate(2, 20), 0.001)
	assert.Equal(t, 0.0, TurnoverRate(0, 0))
}

func TestPunctualityRate(t *testing.T) {
	sessions := []attendance.Session{
		{LateMinutes: 0},
		{LateMinutes: 0},
		{LateMinutes: 12},
		{LateMinutes: 45},
	}
	assert.InDelta(t, 50.0, PunctualityRate(sessions), 0.001)
}

func TestTotalWorkingHours_SkipsOpenSessions(t *testing.T) {
	out := time.Now()
	sessions := []attendance.Session{
		{CheckOut: &out, WorkingHours: 8},
		{CheckOut: &out, WorkingHours: 4.5},
		{WorkingHours: 99}, // still open, must not count
	}
	assert.InDelta(t, 12.5, TotalWorkingHours(sessions), 0.001)
}

func TestTotalsByType_OnlyApprovedCount(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	txs := []finance.Transaction{
		approvedTx(finance.TypeIncome, "service_revenue", "1000", date),
		approvedTx(finance.TypeExpense, "rent", "400", date),
		{Type: finance.TypeIncome, Amount: decimal.RequireFromString("9999"), Date: date, Status: finance.StatusRecorded},
		{Type: finance.TypeExpense, Amount: decimal.RequireFromString("9999"), Date: date, Status: finance.StatusPendingApproval},
	}

	totals := TotalsByType(txs)

	assert.True(t, totals.Income.Equal(decimal.RequireFromString("1000")))
	assert.True(t, totals.Expense.Equal(decimal.RequireFromString("400")))
	assert.True(t, totals.Balance.Equal(decimal.RequireFromString("600")))
}

func TestMonthlyCashFlow_RunningBalance(t *testing.T) {
	txs := []finance.Transaction{
		approvedTx(finance.TypeIncome, "service_revenue", "1000", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
		approvedTx(finance.TypeExpense, "rent", "300", time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)),
		approvedTx(finance.TypeExpense, "rent", "900", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		// Wrong year, must be ignored.
		approvedTx(finance.TypeIncome, "service_revenue", "5000", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	flows := MonthlyCashFlow(txs, 2026)

	require.Len(t, flows, 12)
	assert.True(t, flows[0].Net.Equal(decimal.RequireFromString("700")))
	assert.True(t, flows[0].RunningBalance.Equal(decimal.RequireFromString("700")))

	// February is empty but still present, balance carries through.
	assert.True(t, flows[1].Net.IsZero())
	assert.True(t, flows[1].RunningBalance.Equal(decimal.RequireFromString("700")))

	assert.True(t, flows[2].Net.Equal(decimal.RequireFromString("-900")))
	assert.True(t, flows[2].RunningBalance.Equal(decimal.RequireFromString("-200")))
	assert.True(t, flows[11].RunningBalance.Equal(decimal.RequireFromString("-200")))
}

func TestCategoryBreakdown(t *testing.T) {
	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	txs := []finance.Transaction{
		approvedTx(finance.TypeExpense, "rent", "600", date),
		approvedTx(finance.TypeExpense, "travel", "200", date),
		approvedTx(finance.TypeExpense, "rent", "200", date),
		approvedTx(finance.TypeIncome, "service_revenue", "1000", date),
	}

	shares := CategoryBreakdown(txs)

	require.Len(t, shares, 3)
	// Sorted by total descending.
	assert.Equal(t, "service_revenue", shares[0].Category)
	assert.Equal(t, "rent", shares[1].Category)
	assert.Equal(t, "travel", shares[2].Category)

	// rent is 800 of 1000 expense, 800 of 2000 grand.
	assert.InDelta(t, 80.0, shares[1].PctOfType, 0.001)
	assert.InDelta(t, 40.0, shares[1].PctOfGrand, 0.001)
}

func TestYoYGrowth(t *testing.T) {
	assert.InDelta(t, 25.0, YoYGrowth(decimal.RequireFromString("125"), decimal.RequireFromString("100")), 0.001)
	assert.InDelta(t, -50.0, YoYGrowth(decimal.RequireFromString("50"), decimal.RequireFromString("100")), 0.001)
	assert.Equal(t, 0.0, YoYGrowth(decimal.RequireFromString("500"), decimal.Zero))
}

func TestBudgetVariance(t *testing.T) {
	variance, usage := BudgetVariance(decimal.RequireFromString("1000"), decimal.RequireFromString("750"))
	assert.True(t, variance.Equal(decimal.RequireFromString("250")))
	assert.InDelta(t, 75.0, usage, 0.001)

	// Over budget: negative variance, usage above 100.
	variance, usage = BudgetVariance(decimal.RequireFromString("1000"), decimal.RequireFromString("1200"))
	assert.True(t, variance.Equal(decimal.RequireFromString("-200")))
	assert.InDelta(t, 120.0, usage, 0.001)

	// Zero budget never divides.
	variance, usage = BudgetVariance(decimal.Zero, decimal.RequireFromString("300"))
	assert.True(t, variance.Equal(decimal.RequireFromString("-300")))
	assert.Equal(t, 0.0, usage)
}
