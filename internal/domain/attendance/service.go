package attendance

import (
	"context"
)

// Service defines the attendance lifecycle operations.
type Service interface {
	// CheckIn opens today's session for an employee. Fails when the
	// employee is missing or inactive, or a session already exists.
	CheckIn(ctx context.Context, req CheckInRequest) (SessionResponse, error)

	// CheckOut closes today's open session, deriving working hours and
	// the final status from the configured thresholds.
	CheckOut(ctx context.Context, req CheckOutRequest) (SessionResponse, error)

	// Validate is the read-only preflight check used by callers before
	// offering a check-in/out action.
	Validate(ctx context.Context, employeeID string) (PreflightResult, error)

	// List retrieves sessions with filters (admin/reporting).
	List(ctx context.Context, filter ListSessionsFilter) (ListSessionsResponse, error)

	// Get retrieves a single session by id.
	Get(ctx context.Context, id string) (SessionResponse, error)
}
