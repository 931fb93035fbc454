package customer

import (
	"context"
	"testing"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	customer.CustomerRepository
	customers      map[string]customer.Customer
	byCode         map[string]string
	byEmail        map[string]string
	failCodeExists bool
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: make(map[string]customer.Customer),
		byCode:    make(map[string]string),
		byEmail:   make(map[string]string),
	}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	f.customers[c.ID] = c
	f.byCode[c.Code] = c.ID
	if c.Email != nil {
		f.byEmail[*c.Email] = c.ID
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return customer.Customer{}, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	if f.failCodeExists {
		return false, assert.AnError
	}
	id, ok := f.byCode[code]
	return ok && id != excludeID, nil
}

func (f *fakeCustomerRepo) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	id, ok := f.byEmail[email]
	return ok && id != excludeID, nil
}

func (f *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

func TestCustomerService_Create_GeneratesCode(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newFakeCustomerRepo())

	resp, err := svc.Create(ctx, customer.CreateCustomerRequest{Name: "Acme Corp"})

	require.NoError(t, err)
	assert.Regexp(t, `^CUS\d{6}$`, resp.Code)
	assert.Equal(t, "Acme Corp", resp.Name)
}

func TestCustomerService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newFakeCustomerRepo())

	email := "billing@acme.test"
	_, err := svc.Create(ctx, customer.CreateCustomerRequest{Name: "Acme Corp", Email: &email})
	require.NoError(t, err)

	_, err = svc.Create(ctx, customer.CreateCustomerRequest{Name: "Acme Clone", Email: &email})
	assert.ErrorIs(t, err, customer.ErrCustomerEmailTaken)
}

func TestCustomerService_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.Create(ctx, customer.CreateCustomerRequest{Name: "Acme Corp", Code: "CUS000500"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, customer.CreateCustomerRequest{Name: "Other Corp", Code: "CUS000500"})
	assert.ErrorIs(t, err, customer.ErrCustomerCodeTaken)
}

func TestCustomerService_Create_MissingName(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.Create(ctx, customer.CreateCustomerRequest{})
	assert.Error(t, err)
}

func TestCustomerService_ValidateImportData_DuplicateWithinBatch(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newFakeCustomerRepo())

	rows := []customer.CreateCustomerRequest{
		{Name: "First", Code: "CUS000100"},
		{Name: "Second", Code: "CUS000100"},
		{Name: ""},
	}

	result, err := svc.ValidateImportData(ctx, rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.ErrorCount)

	var rowNumbers []int
	for _, e := range result.Errors {
		rowNumbers = append(rowNumbers, e.RowNumber)
	}
	assert.Contains(t, rowNumbers, 2)
	assert.Contains(t, rowNumbers, 3)
}

func TestCustomerService_ValidateImportData_StoreFailureIsAnError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCustomerRepo()
	repo.failCodeExists = true
	svc := NewCustomerService(repo)

	rows := []customer.CreateCustomerRequest{
		{Name: "First", Code: "CUS000100"},
	}

	// A failing uniqueness lookup must surface, never pass the row.
	result, err := svc.ValidateImportData(ctx, rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, result.SuccessCount)

	_, err = svc.ImportCustomers(ctx, rows)
	require.Error(t, err)
	assert.Empty(t, repo.customers)
}

func TestCustomerService_ImportCustomers_AllOrNothingOnValidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	rows := []customer.CreateCustomerRequest{
		{Name: "Good Row"},
		{Name: ""},
	}

	result, err := svc.ImportCustomers(ctx, rows)

	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Empty(t, repo.customers)
}

func TestCustomerService_ImportCustomers_Success(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	rows := []customer.CreateCustomerRequest{
		{Name: "Row One"},
		{Name: "Row Two"},
	}

	result, err := svc.ImportCustomers(ctx, rows)

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Len(t, repo.customers, 2)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newFakeCustomerRepo())

	name := "Renamed"
	_, err := svc.Update(ctx, customer.UpdateCustomerRequest{ID: "missing", Name: &name})
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}
