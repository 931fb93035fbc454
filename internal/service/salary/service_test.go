package salary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/salary"
)

type fakeSalaryRepo struct {
	salary.SalaryRepository
	records map[string]salary.Salary
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{records: make(map[string]salary.Salary)}
}

func (f *fakeSalaryRepo) Create(_ context.Context, s salary.Salary) (salary.Salary, error) {
	f.records[s.ID] = s
	return s, nil
}

func (f *fakeSalaryRepo) GetByID(_ context.Context, id string) (salary.Salary, error) {
	rec, ok := f.records[id]
	if !ok {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	return rec, nil
}

func (f *fakeSalaryRepo) Update(_ context.Context, s salary.Salary) error {
	f.records[s.ID] = s
	return nil
}

func (f *fakeSalaryRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeSalaryRepo) PeriodExists(_ context.Context, employeeID string, month, year int) (bool, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.PeriodMonth == month && rec.PeriodYear == year {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	known map[string]bool
}

func (f *fakeEmployeeRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func newTestSalaryService() (*SalaryServiceImpl, *fakeSalaryRepo) {
	repo := newFakeSalaryRepo()
	employees := &fakeEmployeeRepo{known: map[string]bool{"emp-1": true}}
	svc := NewSalaryService(repo, employees)
	svc.now = func() time.Time {
		return time.Date(2026, 6, 25, 10, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func createRequest() salary.CreateSalaryRequest {
	return salary.CreateSalaryRequest{
		EmployeeID:  "emp-1",
		PeriodMonth: 6,
		PeriodYear:  2026,
		BaseSalary:  "5000000",
		Allowance:   "750000",
		Deduction:   "250000",
	}
}

func TestSalaryService_Create_DerivesNet(t *testing.T) {
	svc, _ := newTestSalaryService()

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "5500000", resp.NetSalary)
	assert.Nil(t, resp.PaidAt)
}

func TestSalaryService_Create_DuplicatePeriod(t *testing.T) {
	svc, _ := newTestSalaryService()

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, salary.ErrPeriodAlreadyPaid)
}

func TestSalaryService_Create_SamePeriodDifferentEmployee(t *testing.T) {
	svc, _ := newTestSalaryService()
	svc.employeeRepo = &fakeEmployeeRepo{known: map[string]bool{"emp-1": true, "emp-2": true}}

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.EmployeeID = "emp-2"
	_, err = svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestSalaryService_Create_UnknownEmployee(t *testing.T) {
	svc, _ := newTestSalaryService()

	req := createRequest()
	req.EmployeeID = "emp-ghost"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSalaryService_Create_NegativeDeduction(t *testing.T) {
	svc, _ := newTestSalaryService()

	req := createRequest()
	req.Deduction = "-100"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestSalaryService_Update_RecomputesNet(t *testing.T) {
	svc, _ := newTestSalaryService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	base := "6000000"
	updated, err := svc.Update(context.Background(), salary.UpdateSalaryRequest{
		ID:         created.ID,
		BaseSalary: &base,
	})
	require.NoError(t, err)
	assert.Equal(t, "6500000", updated.NetSalary)
}

func TestSalaryService_Update_PaidRecordLocked(t *testing.T) {
	svc, _ := newTestSalaryService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	_, err = svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)

	base := "9000000"
	_, err = svc.Update(context.Background(), salary.UpdateSalaryRequest{
		ID:         created.ID,
		BaseSalary: &base,
	})
	assert.ErrorIs(t, err, salary.ErrSalaryLocked)
}

func TestSalaryService_MarkPaid_SetsPaidAt(t *testing.T) {
	svc, _ := newTestSalaryService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, "2026-06-25T10:00:00Z", *paid.PaidAt)
}

func TestSalaryService_MarkPaid_Twice(t *testing.T) {
	svc, _ := newTestSalaryService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	_, err = svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyPaid)
}

func TestSalaryService_MarkPaid_NotFound(t *testing.T) {
	svc, _ := newTestSalaryService()

	_, err := svc.MarkPaid(context.Background(), "missing")
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestSalaryService_Delete_RefusesPaidRecord(t *testing.T) {
	svc, repo := newTestSalaryService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	_, err = svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, salary.ErrSalaryLocked)
	assert.Len(t, repo.records, 1)
}

func TestSalaryService_Delete_UnpaidRecord(t *testing.T) {
	svc, repo := newTestSalaryService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.records)
}
