package attendance

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string        `json:"employee_id"`
	Method     CheckInMethod `json:"method"`
	ProofURL   *string       `json:"proof_url,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	return validator.First(
		validator.Rule{
			Field:   "employee_id",
			Message: "employee_id is required",
			Valid:   func() bool { return !validator.IsEmpty(r.EmployeeID) },
		},
		validator.Rule{
			Field:   "method",
			Message: "method must be one of web, mobile, kiosk",
			Valid: func() bool {
				if r.Method == "" {
					r.Method = MethodWeb
					return true
				}
				return r.Method == MethodWeb || r.Method == MethodMobile || r.Method == MethodKiosk
			},
		},
		validator.Rule{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
			Valid:   func() bool { return r.Notes == nil || validator.MaxLen(*r.Notes, 500) },
		},
	)
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	return validator.First(
		validator.Rule{
			Field:   "employee_id",
			Message: "employee_id is required",
			Valid:   func() bool { return !validator.IsEmpty(r.EmployeeID) },
		},
		validator.Rule{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
			Valid:   func() bool { return r.Notes == nil || validator.MaxLen(*r.Notes, 500) },
		},
	)
}

// PreflightResult is the structured answer to "can this employee check
// in or out right now". Business conditions are reported as fields, not
// errors, so the caller can disable buttons without parsing failures.
type PreflightResult struct {
	EmployeeExists  bool     `json:"employee_exists"`
	EmployeeActive  bool     `json:"employee_active"`
	HasSessionToday bool     `json:"has_session_today"`
	SessionOpen     bool     `json:"session_open"`
	CanCheckIn      bool     `json:"can_check_in"`
	CanCheckOut     bool     `json:"can_check_out"`
	Messages        []string `json:"messages,omitempty"`
}

type SessionResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"check_in"`
	CheckOut     *string `json:"check_out,omitempty"`
	WorkingHours float64 `json:"working_hours"`
	Status       Status  `json:"status"`
	Method       string  `json:"method"`
	LateMinutes  int     `json:"late_minutes"`
	ProofURL     *string `json:"proof_url,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// NewSessionResponse maps a session entity to its transport shape.
func NewSessionResponse(s Session) SessionResponse {
	resp := SessionResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Date:         s.Date.Format("2006-01-02"),
		CheckIn:      s.CheckIn.Format(time.RFC3339),
		WorkingHours: s.WorkingHours,
		Status:       s.Status,
		Method:       string(s.Method),
		LateMinutes:  s.LateMinutes,
		ProofURL:     s.ProofURL,
		Notes:        s.Notes,
	}
	if s.CheckOut != nil {
		out := s.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &out
	}
	return resp
}

type ListSessionsFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Status     *Status
	Page       int
	Limit      int
}

type ListSessionsResponse struct {
	Sessions   []SessionResponse `json:"sessions"`
	TotalItems int64             `json:"total_items"`
}
