package attendance

import (
	"time"
)

// Status is the session lifecycle label. A session is created as
// CheckedIn and closes into exactly one of the derived statuses; closed
// sessions are never reopened.
type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusFullDay    Status = "full_day"
	StatusShortDay   Status = "short_day"
	StatusEarlyLeave Status = "early_leave"
)

// CheckInMethod records how the check-in was made.
type CheckInMethod string

const (
	MethodWeb    CheckInMethod = "web"
	MethodMobile CheckInMethod = "mobile"
	MethodKiosk  CheckInMethod = "kiosk"
)

// Session is one employee's single daily check-in/check-out record.
// At most one session exists per (employee, calendar day), and at most
// one of them may be open (CheckOut == nil) at any time.
type Session struct {
	ID           string
	EmployeeID   string
	Date         time.Time // calendar day, truncated
	CheckIn      time.Time
	CheckOut     *time.Time
	WorkingHours float64
	Status       Status
	Method       CheckInMethod
	LateMinutes  int
	ProofURL     *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName *string
}

// Open reports whether the session is still waiting for a check-out.
func (s *Session) Open() bool {
	return s.CheckOut == nil
}

// Thresholds holds the working-hour boundaries used to classify a
// closed session.
type Thresholds struct {
	FullDayHours  float64
	ShortDayHours float64
}

// DefaultThresholds matches the standard 8h/4h policy.
func DefaultThresholds() Thresholds {
	return Thresholds{FullDayHours: 8, ShortDayHours: 4}
}

// DeriveStatus classifies a closed session purely from its working
// hours. Boundary values land on the higher label: exactly FullDayHours
// is a full day, exactly ShortDayHours is a short day.
func DeriveStatus(workingHours float64, t Thresholds) Status {
	switch {
	case workingHours >= t.FullDayHours:
		return StatusFullDay
	case workingHours >= t.ShortDayHours:
		return StatusShortDay
	default:
		return StatusEarlyLeave
	}
}

// WorkingHoursBetween computes the session duration in hours.
func WorkingHoursBetween(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours()
}

// DayOf truncates a timestamp to its calendar day in the given location.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
