package finance

import (
	"context"
	"time"
)

// TransactionRepository defines data access for finance transactions.
// The store carries a unique constraint on code; the engine still
// pre-checks so the common case fails before the write.
type TransactionRepository interface {
	// Create inserts a new transaction and returns it with generated fields.
	Create(ctx context.Context, tx Transaction) (Transaction, error)

	// GetByID retrieves a transaction by id.
	GetByID(ctx context.Context, id string) (Transaction, error)

	// Update persists field edits on a mutable transaction.
	Update(ctx context.Context, tx Transaction) error

	// UpdateStatus persists a status change plus approval metadata.
	UpdateStatus(ctx context.Context, tx Transaction) error

	// Delete removes a transaction. The service refuses Approved ones.
	Delete(ctx context.Context, id string) error

	// CodeExists reports whether a code is taken, excluding excludeID
	// so the same check serves insert (excludeID empty) and update.
	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)

	// Count returns the total number of transactions; seeds the code
	// generator counter.
	Count(ctx context.Context) (int64, error)

	// List retrieves transactions with filters and pagination.
	List(ctx context.Context, filter ListTransactionsFilter) ([]Transaction, int64, error)

	// ListByPeriod retrieves all transactions dated within [from, to],
	// used by the report aggregator.
	ListByPeriod(ctx context.Context, from, to time.Time) ([]Transaction, error)
}
