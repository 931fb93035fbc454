package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn  = errors.New("a session already exists for this employee today")
	ErrEmployeeInactive  = errors.New("employee is not in an active employment status")
	ErrNotCheckedIn      = errors.New("no open session exists for this employee today")
	ErrAlreadyCheckedOut = errors.New("session has already been checked out")
	ErrCheckOutBeforeIn  = errors.New("check-out time is earlier than check-in time")

	// General errors
	ErrSessionNotFound = errors.New("attendance session not found")
)
