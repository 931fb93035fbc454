package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
)

// Pure computations over already-loaded collections. Every rate guards
// the zero-denominator case by returning 0.

var hundred = decimal.NewFromInt(100)

// Rate returns numerator/denominator as a percentage, 0 when the
// denominator is 0.
func Rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

// AttendanceRate is present days over expected working days.
func AttendanceRate(presentDays, expectedWorkDays int) float64 {
	return Rate(presentDays, expectedWorkDays)
}

// TurnoverRate is separated employees over total headcount.
func TurnoverRate(separations, headcount int) float64 {
	return Rate(separations, headcount)
}

// PunctualityRate is on-time check-ins over present days. A check-in
// counts as on time when no late minutes were recorded.
func PunctualityRate(sessions []attendance.Session) float64 {
	present := len(sessions)
	onTime := 0
	for _, s := range sessions {
		if s.LateMinutes == 0 {
			onTime++
		}
	}
	return Rate(onTime, present)
}

// TotalWorkingHours sums the working hours of closed sessions.
func TotalWorkingHours(sessions []attendance.Session) float64 {
	total := 0.0
	for _, s := range sessions {
		if !s.Open() {
			total += s.WorkingHours
		}
	}
	return total
}

// Totals holds type-level sums over a transaction collection.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// TotalsByType sums income and expense; balance = income - expense.
// Only approved transactions count toward financial totals.
func TotalsByType(txs []finance.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txs {
		if t.Status != finance.StatusApproved {
			continue
		}
		switch t.Type {
		case finance.TypeIncome:
			income = income.Add(t.Amount)
		case finance.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

// MonthlyFlow is one month of the cash-flow series.
type MonthlyFlow struct {
	Month          int             `json:"month"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	Net            decimal.Decimal `json:"net"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// MonthlyCashFlow buckets approved transactions of one year by month
// and carries a running balance across the series. Months without
// transactions still appear with zero values.
func MonthlyCashFlow(txs []finance.Transaction, year int) []MonthlyFlow {
	flows := make([]MonthlyFlow, 12)
	for i := range flows {
		flows[i] = MonthlyFlow{
			Month:          i + 1,
			Income:         decimal.Zero,
			Expense:        decimal.Zero,
			Net:            decimal.Zero,
			RunningBalance: decimal.Zero,
		}
	}

	for _, t := range txs {
		if t.Status != finance.StatusApproved || t.Date.Year() != year {
			continue
		}
		idx := int(t.Date.Month()) - 1
		switch t.Type {
		case finance.TypeIncome:
			flows[idx].Income = flows[idx].Income.Add(t.Amount)
		case finance.TypeExpense:
			flows[idx].Expense = flows[idx].Expense.Add(t.Amount)
		}
	}

	running := decimal.Zero
	for i := range flows {
		flows[i].Net = flows[i].Income.Sub(flows[i].Expense)
		running = running.Add(flows[i].Net)
		flows[i].RunningBalance = running
	}
	return flows
}

// CategoryShare is one category's slice of the breakdown.
type CategoryShare struct {
	Category   string          `json:"category"`
	Type       finance.Type    `json:"type"`
	Total      decimal.Decimal `json:"total"`
	PctOfType  float64         `json:"pct_of_type"`
	PctOfGrand float64         `json:"pct_of_grand"`
}

// CategoryBreakdown groups approved transactions by (type, category)
// and expresses each group as a percentage of its type total and of
// the grand total. Shares are sorted by total, descending.
func CategoryBreakdown(txs []finance.Transaction) []CategoryShare {
	type key struct {
		txType   finance.Type
		category string
	}
	sums := make(map[key]decimal.Decimal)
	typeTotals := make(map[finance.Type]decimal.Decimal)
	grand := decimal.Zero

	for _, t := range txs {
		if t.Status != finance.StatusApproved {
			continue
		}
		k := key{txType: t.Type, category: t.Category}
		sums[k] = sums[k].Add(t.Amount)
		typeTotals[t.Type] = typeTotals[t.Type].Add(t.Amount)
		grand = grand.Add(t.Amount)
	}

	shares := make([]CategoryShare, 0, len(sums))
	for k, total := range sums {
		shares = append(shares, CategoryShare{
			Category:   k.category,
			Type:       k.txType,
			Total:      total,
			PctOfType:  pctOf(total, typeTotals[k.txType]),
			PctOfGrand: pctOf(total, grand),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Total.Equal(shares[j].Total) {
			return shares[i].Category < shares[j].Category
		}
		return shares[i].Total.GreaterThan(shares[j].Total)
	})
	return shares
}

func pctOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	pct, _ := part.Div(whole).Mul(hundred).Float64()
	return pct
}

// YoYGrowth is (current - previous) / previous * 100, 0 when previous
// is 0.
func YoYGrowth(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	growth, _ := current.Sub(previous).Div(previous).Mul(hundred).Float64()
	return growth
}

// BudgetVariance compares a project budget against its actual approved
// expenses. Variance is budget - actual; a negative value means the
// project is over budget. UsagePct is 0 for a zero budget.
func BudgetVariance(budget, actual decimal.Decimal) (variance decimal.Decimal, usagePct float64) {
	variance = budget.Sub(actual)
	if budget.IsZero() {
		return variance, 0
	}
	usagePct, _ = actual.Div(budget).Mul(hundred).Float64()
	return variance, usagePct
}
