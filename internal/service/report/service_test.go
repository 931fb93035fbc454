package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/fixtures"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	countsByStatus map[string]int64
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	if filter.Status == nil {
		var total int64
		for _, n := range f.countsByStatus {
			total += n
		}
		return nil, total, nil
	}
	return nil, f.countsByStatus[*filter.Status], nil
}

func TestReportService_WorkforceSummary(t *testing.T) {
	svc := NewReportService(nil, nil, nil, &fakeEmployeeRepo{
		countsByStatus: map[string]int64{
			"active":     16,
			"probation":  2,
			"on_leave":   2,
			"resigned":   3,
			"terminated": 2,
		},
	}, fixtures.DefaultCatalog())

	out, err := svc.WorkforceSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(25), out.TotalEmployees)
	assert.Equal(t, int64(18), out.ActiveEmployees)
	assert.Equal(t, int64(5), out.Separations)
	assert.InDelta(t, 20.0, out.TurnoverRate, 0.001)
	assert.Equal(t, int64(2), out.ByStatus["on_leave"])
}

func TestReportService_WorkforceSummary_EmptyDirectory(t *testing.T) {
	svc := NewReportService(nil, nil, nil, &fakeEmployeeRepo{
		countsByStatus: map[string]int64{},
	}, fixtures.DefaultCatalog())

	out, err := svc.WorkforceSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.TotalEmployees)
	assert.Equal(t, 0.0, out.TurnoverRate)
}
