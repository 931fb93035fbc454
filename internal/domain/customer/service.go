package customer

import "context"

// Service defines customer operations, including the batch import path
// that validates every row before persisting any.
type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	Update(ctx context.Context, req UpdateCustomerRequest) (CustomerResponse, error)
	Get(ctx context.Context, id string) (CustomerResponse, error)
	List(ctx context.Context, filter ListCustomersFilter) (ListCustomersResponse, error)
	Delete(ctx context.Context, id string) error

	// ValidateImportData accumulates all row violations, 1-indexed.
	// A store failure during the lookups comes back as an error.
	ValidateImportData(ctx context.Context, rows []CreateCustomerRequest) (ImportResult, error)

	// ImportCustomers validates all rows first, then inserts row by
	// row with continue-on-error persistence.
	ImportCustomers(ctx context.Context, rows []CreateCustomerRequest) (ImportResult, error)
}
