package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is the transaction direction. The set is closed.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Status is the approval lifecycle state of a transaction.
type Status string

const (
	StatusRecorded        Status = "recorded"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusCancelled       Status = "cancelled"
)

// allowedTransitions is the legal status graph. Approved and Cancelled
// have no outgoing edges; a Rejected transaction may be resubmitted.
// Recorded cannot jump straight to Approved.
var allowedTransitions = map[Status][]Status{
	StatusRecorded:        {StatusPendingApproval, StatusCancelled},
	StatusPendingApproval: {StatusApproved, StatusRejected, StatusCancelled},
	StatusRejected:        {StatusPendingApproval},
	StatusApproved:        {},
	StatusCancelled:       {},
}

// IsValidStatus reports whether s is a member of the closed status set.
func IsValidStatus(s Status) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedNext returns the legal successor states of a status.
func AllowedNext(from Status) []Status {
	return allowedTransitions[from]
}

// Terminal reports whether a status has no outgoing transitions. A
// terminal transaction is immutable with respect to status and core
// fields, and an Approved one may never be deleted.
func Terminal(s Status) bool {
	return len(allowedTransitions[s]) == 0
}

// MaxAmount is the fixed ceiling for a single transaction amount.
var MaxAmount = decimal.New(1, 12)

// MinDate is the earliest acceptable transaction date.
var MinDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Transaction is a single income or expense record moving through the
// approval workflow. At most one of ProjectID, CustomerID, EmployeeID
// may be set.
type Transaction struct {
	ID            string
	Code          string
	Type          Type
	Category      string
	Amount        decimal.Decimal
	Date          time.Time
	Status        Status
	Description   *string
	PaymentMethod *string
	ReferenceNo   *string
	ProjectID     *string
	CustomerID    *string
	EmployeeID    *string
	RecordedBy    string
	ApprovedBy    *string
	ApprovedAt    *time.Time
	RejectReason  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RelationCount counts how many of the three relationship fields are set.
func (t *Transaction) RelationCount() int {
	count := 0
	if t.ProjectID != nil && *t.ProjectID != "" {
		count++
	}
	if t.CustomerID != nil && *t.CustomerID != "" {
		count++
	}
	if t.EmployeeID != nil && *t.EmployeeID != "" {
		count++
	}
	return count
}
