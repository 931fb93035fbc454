package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
)

// ReferenceData is the closed employment-status set consulted for the
// "active" precondition.
type ReferenceData interface {
	IsActiveEmployment(status string) bool
}

type AttendanceServiceImpl struct {
	attendance.SessionRepository
	employee.EmployeeRepository
	refData    ReferenceData
	thresholds attendance.Thresholds
	workdayStH int // workday start hour, for late classification
	workdayStM int
	graceMin   int
	loc        *time.Location
	now        func() time.Time
}

func NewAttendanceService(
	sessionRepo attendance.SessionRepository,
	employeeRepo employee.EmployeeRepository,
	refData ReferenceData,
	cfg config.AttendanceConfig,
) *AttendanceServiceImpl {
	hour, minute := parseWorkdayStart(cfg.WorkdayStart)
	return &AttendanceServiceImpl{
		SessionRepository:  sessionRepo,
		EmployeeRepository: employeeRepo,
		refData:            refData,
		thresholds: attendance.Thresholds{
			FullDayHours:  cfg.FullDayHours,
			ShortDayHours: cfg.ShortDayHours,
		},
		workdayStH: hour,
		workdayStM: minute,
		graceMin:   cfg.GraceMinutes,
		loc:        time.Local,
		now:        time.Now,
	}
}

func parseWorkdayStart(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 9, 0
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 9, 0
	}
	return hour, minute
}

// CheckIn implements attendance.Service.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}
	now := a.now()

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.SessionResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !a.refData.IsActiveEmployment(emp.EmploymentStatus) {
		return attendance.SessionResponse{}, attendance.ErrEmployeeInactive
	}

	day := attendance.DayOf(now, a.loc)
	existing, err := a.SessionRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to check today's session: %w", err)
	}
	if existing != nil {
		return attendance.SessionResponse{}, attendance.ErrAlreadyCheckedIn
	}

	lateMinutes := a.lateMinutes(now, day)

	session := attendance.Session{
		ID:          uuid.Must(uuid.NewV7()).String(),
		EmployeeID:  emp.ID,
		Date:        day,
		CheckIn:     now,
		Status:      attendance.StatusCheckedIn,
		Method:      req.Method,
		LateMinutes: lateMinutes,
		ProofURL:    req.ProofURL,
		Notes:       req.Notes,
	}

	created, err := a.SessionRepository.Create(ctx, session)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to create attendance session: %w", err)
	}
	created.EmployeeName = &emp.FullName

	return attendance.NewSessionResponse(created), nil
}

// lateMinutes measures how far past the scheduled start (plus grace) a
// check-in landed. Within grace means on time.
func (a *AttendanceServiceImpl) lateMinutes(now, day time.Time) int {
	scheduled := time.Date(day.Year(), day.Month(), day.Day(), a.workdayStH, a.workdayStM, 0, 0, a.loc)
	graceLimit := scheduled.Add(time.Duration(a.graceMin) * time.Minute)
	if !now.After(graceLimit) {
		return 0
	}
	diff := now.Sub(scheduled).Minutes()
	if diff <= 0 {
		return 0
	}
	return int(math.Floor(diff))
}

// CheckOut implements attendance.Service.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}
	now := a.now()

	day := attendance.DayOf(now, a.loc)
	session, err := a.SessionRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}
	if session == nil {
		return attendance.SessionResponse{}, attendance.ErrNotCheckedIn
	}
	if !session.Open() {
		return attendance.SessionResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if now.Before(session.CheckIn) {
		return attendance.SessionResponse{}, attendance.ErrCheckOutBeforeIn
	}

	session.CheckOut = &now
	session.WorkingHours = attendance.WorkingHoursBetween(session.CheckIn, now)
	session.Status = attendance.DeriveStatus(session.WorkingHours, a.thresholds)
	if req.Notes != nil {
		session.Notes = req.Notes
	}

	if err := a.SessionRepository.Update(ctx, *session); err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to update attendance session: %w", err)
	}

	return attendance.NewSessionResponse(*session), nil
}

// Validate implements attendance.Service. Business conditions come
// back as result fields so the caller can run this as a preflight
// check without handling errors for ordinary states.
func (a *AttendanceServiceImpl) Validate(ctx context.Context, employeeID string) (attendance.PreflightResult, error) {
	result := attendance.PreflightResult{}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			result.Messages = append(result.Messages, "employee does not exist")
			return result, nil
		}
		return result, fmt.Errorf("failed to get employee: %w", err)
	}
	result.EmployeeExists = true

	result.EmployeeActive = a.refData.IsActiveEmployment(emp.EmploymentStatus)
	if !result.EmployeeActive {
		result.Messages = append(result.Messages, "employee is not in an active employment status")
	}

	day := attendance.DayOf(a.now(), a.loc)
	session, err := a.SessionRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return result, fmt.Errorf("failed to check today's session: %w", err)
	}

	if session != nil {
		result.HasSessionToday = true
		result.SessionOpen = session.Open()
		if result.SessionOpen {
			result.Messages = append(result.Messages, "an open session exists; check-out is the only available action")
		} else {
			result.Messages = append(result.Messages, "today's session is already closed")
		}
	}

	result.CanCheckIn = result.EmployeeActive && !result.HasSessionToday
	result.CanCheckOut = result.EmployeeActive && result.SessionOpen
	return result, nil
}

// List implements attendance.Service.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListSessionsFilter) (attendance.ListSessionsResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	sessions, total, err := a.SessionRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListSessionsResponse{}, fmt.Errorf("failed to list attendance sessions: %w", err)
	}

	resp := attendance.ListSessionsResponse{
		Sessions:   make([]attendance.SessionResponse, 0, len(sessions)),
		TotalItems: total,
	}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, attendance.NewSessionResponse(s))
	}
	return resp, nil
}

// Get implements attendance.Service.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.SessionResponse, error) {
	session, err := a.SessionRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) {
			return attendance.SessionResponse{}, attendance.ErrSessionNotFound
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to get attendance session: %w", err)
	}
	return attendance.NewSessionResponse(session), nil
}
