package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for attendance sessions. The
// store is expected to carry a unique constraint on (employee_id, date)
// so a concurrent double check-in surfaces as a conflict at write time.
type SessionRepository interface {
	// Create inserts a new session and returns it with generated fields.
	Create(ctx context.Context, session Session) (Session, error)

	// GetByID retrieves a session by its id.
	GetByID(ctx context.Context, id string) (Session, error)

	// GetByEmployeeAndDate retrieves the session for an employee on a
	// calendar day, open or closed. Returns nil when none exists; used
	// to prevent double check-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Session, error)

	// Update persists check-out mutations on an existing session.
	Update(ctx context.Context, session Session) error

	// List retrieves sessions with filters and pagination.
	List(ctx context.Context, filter ListSessionsFilter) ([]Session, int64, error)
}
