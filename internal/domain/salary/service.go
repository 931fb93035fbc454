package salary

import "context"

// Service defines salary operations. One record exists per employee
// per period; net pay is always derived, never accepted from input.
type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	Update(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error)
	Get(ctx context.Context, id string) (SalaryResponse, error)
	List(ctx context.Context, filter ListSalariesFilter) (ListSalariesResponse, error)
	Delete(ctx context.Context, id string) error

	// MarkPaid stamps the record with the payment time. Marking an
	// already-paid record again is a conflict.
	MarkPaid(ctx context.Context, id string) (SalaryResponse, error)
}
