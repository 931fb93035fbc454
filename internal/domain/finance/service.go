package finance

import (
	"context"
)

// Service defines the transaction approval workflow operations.
type Service interface {
	// Create validates and records a new transaction, generating a code
	// when the request leaves it empty.
	Create(ctx context.Context, req CreateTransactionRequest, recordedBy string) (TransactionResponse, error)

	// Update applies field edits; refused once the persisted status is
	// Approved or Cancelled.
	Update(ctx context.Context, req UpdateTransactionRequest) (TransactionResponse, error)

	// Approve moves a PendingApproval transaction to Approved.
	Approve(ctx context.Context, id string, approverID string) (TransactionResponse, error)

	// Reject moves a PendingApproval transaction to Rejected; the
	// reason is required.
	Reject(ctx context.Context, id string, reason string, approverID string) (TransactionResponse, error)

	// Cancel moves a non-terminal transaction to Cancelled.
	Cancel(ctx context.Context, id string) (TransactionResponse, error)

	// SetStatus performs a generic guarded transition.
	SetStatus(ctx context.Context, req SetStatusRequest, actorID string) (TransactionResponse, error)

	// ApproveMany applies Approve per id, accumulating failures.
	ApproveMany(ctx context.Context, ids []string, approverID string) BatchResult

	// RejectMany applies Reject per id, accumulating failures.
	RejectMany(ctx context.Context, ids []string, reason string, approverID string) BatchResult

	// ValidateImportData checks every row up front and returns all
	// violations with 1-indexed row numbers; nothing is persisted.
	// A store failure during the uniqueness or relation lookups is
	// returned as an error, never folded into the row results.
	ValidateImportData(ctx context.Context, rows []CreateTransactionRequest, recordedBy string) (BatchResult, error)

	// ImportBatch validates all rows first, then inserts row by row,
	// tolerating per-row persistence failures.
	ImportBatch(ctx context.Context, rows []CreateTransactionRequest, recordedBy string) (BatchResult, error)

	// Get retrieves a transaction by id.
	Get(ctx context.Context, id string) (TransactionResponse, error)

	// List retrieves transactions with filters.
	List(ctx context.Context, filter ListTransactionsFilter) (ListTransactionsResponse, error)

	// Delete removes a transaction; Approved ones are refused.
	Delete(ctx context.Context, id string) error
}
