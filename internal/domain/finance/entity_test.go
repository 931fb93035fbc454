package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/fixtures"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusRecorded, StatusPendingApproval, true},
		{StatusRecorded, StatusCancelled, true},
		{StatusRecorded, StatusApproved, false},
		{StatusRecorded, StatusRejected, false},
		{StatusPendingApproval, StatusApproved, true},
		{StatusPendingApproval, StatusRejected, true},
		{StatusPendingApproval, StatusCancelled, true},
		{StatusPendingApproval, StatusRecorded, false},
		{StatusRejected, StatusPendingApproval, true},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusCancelled, false},
		{StatusApproved, StatusCancelled, false},
		{StatusApproved, StatusPendingApproval, false},
		{StatusCancelled, StatusPendingApproval, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, CanTransition(c.from, c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(StatusApproved))
	assert.True(t, Terminal(StatusCancelled))
	assert.False(t, Terminal(StatusRecorded))
	assert.False(t, Terminal(StatusPendingApproval))
	assert.False(t, Terminal(StatusRejected))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusRecorded))
	assert.True(t, IsValidStatus(StatusRejected))
	assert.False(t, IsValidStatus(Status("archived")))
	assert.False(t, IsValidStatus(Status("")))
}

func TestRelationCount(t *testing.T) {
	projectID := "p1"
	customerID := "c1"
	empty := ""

	tx := Transaction{}
	assert.Equal(t, 0, tx.RelationCount())

	tx.ProjectID = &projectID
	assert.Equal(t, 1, tx.RelationCount())

	tx.CustomerID = &customerID
	assert.Equal(t, 2, tx.RelationCount())

	// An empty string pointer does not count as a set relation.
	tx.EmployeeID = &empty
	assert.Equal(t, 2, tx.RelationCount())
}

func validTransaction() Transaction {
	return Transaction{
		Type:       TypeExpense,
		Category:   "rent",
		Amount:     decimal.NewFromInt(1500),
		Date:       time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Status:     StatusRecorded,
		RecordedBy: "user-1",
	}
}

func TestRules_ValidTransaction(t *testing.T) {
	tx := validTransaction()
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)

	errs := validator.All(Rules(&tx, fixtures.DefaultCatalog(), now)...)
	assert.Empty(t, errs)
}

func TestRules_Violations(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)
	cat := fixtures.DefaultCatalog()

	cases := []struct {
		name   string
		mutate func(*Transaction)
		field  string
	}{
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"amount over ceiling", func(tx *Transaction) { tx.Amount = MaxAmount.Add(decimal.NewFromInt(1)) }, "amount"},
		{"unknown type", func(tx *Transaction) { tx.Type = Type("transfer") }, "type"},
		{"income category on expense", func(tx *Transaction) { tx.Category = "service_revenue" }, "category"},
		{"date before floor", func(tx *Transaction) { tx.Date = time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC) }, "date"},
		{"date too far ahead", func(tx *Transaction) { tx.Date = now.AddDate(0, 0, 2) }, "date"},
		{"missing recorder", func(tx *Transaction) { tx.RecordedBy = "" }, "recorded_by"},
		{"bad code", func(tx *Transaction) { tx.Code = "x" }, "code"},
		{"unknown payment method", func(tx *Transaction) {
			m := "crypto"
			tx.PaymentMethod = &m
		}, "payment_method"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tx := validTransaction()
			c.mutate(&tx)

			errs := validator.All(Rules(&tx, cat, now)...)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, c.field)
		})
	}
}

func TestRules_AmountAtCeilingIsValid(t *testing.T) {
	tx := validTransaction()
	tx.Amount = MaxAmount
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)

	errs := validator.All(Rules(&tx, fixtures.DefaultCatalog(), now)...)
	assert.Empty(t, errs)
}

func TestRules_TomorrowIsValid(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)
	tx := validTransaction()
	tx.Date = now.AddDate(0, 0, 1)

	errs := validator.All(Rules(&tx, fixtures.DefaultCatalog(), now)...)
	assert.Empty(t, errs)
}

func TestRules_RelationExclusivity(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)
	projectID := "p1"
	customerID := "c1"

	tx := validTransaction()
	tx.ProjectID = &projectID
	tx.CustomerID = &customerID

	errs := validator.All(Rules(&tx, fixtures.DefaultCatalog(), now)...)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "relations")
}
