package finance

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// Catalog is the reference-data collaborator consulted during
// validation. Category sets are closed and type-scoped.
type Catalog interface {
	IsValidCategory(txType, category string) bool
	IsValidPaymentMethod(method string) bool
}

// Rules returns the full content rule set for a transaction. The same
// set serves the fail-fast single-record path (validator.First) and the
// accumulate-all import path (validator.All). Code uniqueness is not
// here: it needs the store and an exclude-id, so the service owns it.
func Rules(t *Transaction, cat Catalog, now time.Time) []validator.Rule {
	return []validator.Rule{
		{
			Field:   "type",
			Message: "type must be income or expense",
			Valid:   func() bool { return t.Type == TypeIncome || t.Type == TypeExpense },
		},
		{
			Field:   "category",
			Message: "category is not valid for this transaction type",
			Valid:   func() bool { return cat.IsValidCategory(string(t.Type), t.Category) },
		},
		{
			Field:   "amount",
			Message: "amount must be greater than zero",
			Valid:   func() bool { return t.Amount.IsPositive() },
		},
		{
			Field:   "amount",
			Message: "amount exceeds the allowed ceiling",
			Valid:   func() bool { return t.Amount.LessThanOrEqual(MaxAmount) },
		},
		{
			Field:   "code",
			Message: "code must be 3-20 alphanumeric characters",
			Valid:   func() bool { return t.Code == "" || validator.IsValidCode(t.Code) },
		},
		{
			Field:   "date",
			Message: "date must not be before 2000-01-01",
			Valid:   func() bool { return !t.Date.Before(MinDate) },
		},
		{
			Field:   "date",
			Message: "date must not be after tomorrow",
			Valid:   func() bool { return !t.Date.After(now.AddDate(0, 0, 1)) },
		},
		{
			Field:   "recorded_by",
			Message: "recorded_by is required",
			Valid:   func() bool { return !validator.IsEmpty(t.RecordedBy) },
		},
		{
			Field:   "relations",
			Message: "at most one of project_id, customer_id, employee_id may be set",
			Valid:   func() bool { return t.RelationCount() <= 1 },
		},
		{
			Field:   "payment_method",
			Message: "payment method is not recognized",
			Valid: func() bool {
				return t.PaymentMethod == nil || cat.IsValidPaymentMethod(*t.PaymentMethod)
			},
		},
		{
			Field:   "description",
			Message: "description must not exceed 500 characters",
			Valid: func() bool {
				return t.Description == nil || validator.MaxLen(*t.Description, 500)
			},
		},
		{
			Field:   "reference_no",
			Message: "reference number must not exceed 50 characters",
			Valid: func() bool {
				return t.ReferenceNo == nil || validator.MaxLen(*t.ReferenceNo, 50)
			},
		},
	}
}
