package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	attendance.SessionRepository
	sessions map[string]*attendance.Session // keyed by employeeID+date
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[string]*attendance.Session),
	}
}

func sessionKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeSessionRepo) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	copied := s
	f.sessions[sessionKey(s.EmployeeID, s.Date)] = &copied
	return copied, nil
}

func (f *fakeSessionRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Session, error) {
	s, ok := f.sessions[sessionKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, s attendance.Session) error {
	copied := s
	f.sessions[sessionKey(s.EmployeeID, s.Date)] = &copied
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		WorkdayStart:  "09:00",
		GraceMinutes:  15,
		FullDayHours:  8,
		ShortDayHours: 4,
	}
}

func newTestService(employees map[string]employee.Employee) (*AttendanceServiceImpl, *fakeSessionRepo) {
	sessions := newFakeSessionRepo()
	svc := NewAttendanceService(
		sessions,
		&fakeEmployeeRepo{employees: employees},
		fixtures.DefaultCatalog(),
		testAttendanceConfig(),
	)
	svc.loc = time.UTC
	return svc, sessions
}

func activeEmployee(id string) map[string]employee.Employee {
	return map[string]employee.Employee{
		id: {ID: id, FullName: "Test Person", EmploymentStatus: "active"},
	}
}

func TestAttendanceService_CheckIn_Success(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)
	}

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckedIn, resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)
	assert.Equal(t, string(attendance.MethodWeb), resp.Method)
}

func TestAttendanceService_CheckIn_WithinGraceIsOnTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	// 09:15 with a 15-minute grace is still on time.
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	}

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.LateMinutes)
}

func TestAttendanceService_CheckIn_LateBeyondGrace(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 40, 0, 0, time.UTC)
	}

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, 40, resp.LateMinutes)
}

func TestAttendanceService_CheckIn_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckIn_InactiveEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Gone Person", EmploymentStatus: "resigned"},
	})

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrEmployeeInactive)
}

func TestAttendanceService_CheckIn_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(map[string]employee.Employee{})

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "nobody"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_CheckOut_FullDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// Exactly 8 hours lands on full day.
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	}
	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusFullDay, resp.Status)
	assert.InDelta(t, 8.0, resp.WorkingHours, 0.001)
}

func TestAttendanceService_CheckOut_ShortDayBoundary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// Exactly 4 hours is a short day, not an early leave.
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
	}
	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusShortDay, resp.Status)
}

func TestAttendanceService_CheckOut_EarlyLeave(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)
	}
	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusEarlyLeave, resp.Status)
}

func TestAttendanceService_CheckOut_BeforeCheckIn(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// A clock moving backwards must not close the session.
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	}
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeIn)

	session, err := repo.GetByEmployeeAndDate(ctx, "emp-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Nil(t, session.CheckOut)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	}
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_Validate_FreshEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	}

	result, err := svc.Validate(ctx, "emp-1")

	require.NoError(t, err)
	assert.True(t, result.CanCheckIn)
	assert.False(t, result.CanCheckOut)
	assert.False(t, result.HasSessionToday)
}

func TestAttendanceService_Validate_OpenSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	result, err := svc.Validate(ctx, "emp-1")

	require.NoError(t, err)
	assert.False(t, result.CanCheckIn)
	assert.True(t, result.CanCheckOut)
	assert.True(t, result.SessionOpen)
}

func TestAttendanceService_Validate_UnknownEmployeeIsNotAnError(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(map[string]employee.Employee{})

	result, err := svc.Validate(ctx, "nobody")

	require.NoError(t, err)
	assert.False(t, result.EmployeeExists)
	assert.False(t, result.CanCheckIn)
	assert.NotEmpty(t, result.Messages)
}

func TestDeriveStatus_Boundaries(t *testing.T) {
	th := attendance.DefaultThresholds()

	assert.Equal(t, attendance.StatusFullDay, attendance.DeriveStatus(8, th))
	assert.Equal(t, attendance.StatusShortDay, attendance.DeriveStatus(7.999, th))
	assert.Equal(t, attendance.StatusShortDay, attendance.DeriveStatus(4, th))
	assert.Equal(t, attendance.StatusEarlyLeave, attendance.DeriveStatus(3.999, th))
	assert.Equal(t, attendance.StatusEarlyLeave, attendance.DeriveStatus(0, th))
}
