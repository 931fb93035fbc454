package finance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/project"
	"github.com/staffdesk/staffdesk-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactionRepo struct {
	finance.TransactionRepository
	transactions   map[string]finance.Transaction
	codes          map[string]string // code -> id
	failCreate     bool
	failCodeExists bool
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[string]finance.Transaction),
		codes:        make(map[string]string),
	}
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx finance.Transaction) (finance.Transaction, error) {
	if f.failCreate {
		return finance.Transaction{}, assert.AnError
	}
	f.transactions[tx.ID] = tx
	f.codes[tx.Code] = tx.ID
	return tx, nil
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (finance.Transaction, error) {
	tx, ok := f.transactions[id]
	if !ok {
		return finance.Transaction{}, finance.ErrTransactionNotFound
	}
	return tx, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, tx finance.Transaction) error {
	f.transactions[tx.ID] = tx
	return nil
}

func (f *fakeTransactionRepo) UpdateStatus(ctx context.Context, tx finance.Transaction) error {
	f.transactions[tx.ID] = tx
	return nil
}

func (f *fakeTransactionRepo) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	if f.failCodeExists {
		return false, assert.AnError
	}
	id, ok := f.codes[code]
	if !ok {
		return false, nil
	}
	return id != excludeID, nil
}

func (f *fakeTransactionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.transactions)), nil
}

type fakeProjectRepo struct {
	project.ProjectRepository
	exists     bool
	failLookup bool
}

func (f *fakeProjectRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	if f.failLookup {
		return false, assert.AnError
	}
	return f.exists, nil
}

type fakeCustomerRepo struct {
	customer.CustomerRepository
	exists bool
}

func (f *fakeCustomerRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	return f.exists, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	exists bool
}

func (f *fakeEmployeeRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	return f.exists, nil
}

func newTestFinanceService(repo *fakeTransactionRepo) *FinanceServiceImpl {
	svc := NewFinanceService(
		repo,
		&fakeProjectRepo{exists: true},
		&fakeCustomerRepo{exists: true},
		&fakeEmployeeRepo{exists: true},
		fixtures.DefaultCatalog(),
	)
	svc.now = func() time.Time {
		return time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func validCreateRequest() finance.CreateTransactionRequest {
	return finance.CreateTransactionRequest{
		Type:     finance.TypeExpense,
		Category: "rent",
		Amount:   "1500.00",
		Date:     "2026-05-10",
	}
}

func TestFinanceService_Create_GeneratesCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())

	resp, err := svc.Create(ctx, validCreateRequest(), "user-1")

	require.NoError(t, err)
	assert.Regexp(t, `^FIN\d{6}$`, resp.Code)
	assert.Equal(t, finance.StatusRecorded, resp.Status)
	assert.Equal(t, "user-1", resp.RecordedBy)
}

func TestFinanceService_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	first := validCreateRequest()
	first.Code = "FIN000123"
	_, err := svc.Create(ctx, first, "user-1")
	require.NoError(t, err)

	second := validCreateRequest()
	second.Code = "FIN000123"
	_, err = svc.Create(ctx, second, "user-1")
	assert.ErrorIs(t, err, finance.ErrCodeExists)
}

func TestFinanceService_Create_InvalidAmount(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())

	req := validCreateRequest()
	req.Amount = "-10"
	_, err := svc.Create(ctx, req, "user-1")
	assert.Error(t, err)
}

func TestFinanceService_ApproveFlow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	created, err := svc.Create(ctx, validCreateRequest(), "user-1")
	require.NoError(t, err)

	// Recorded cannot be approved directly.
	_, err = svc.Approve(ctx, created.ID, "manager-1")
	assert.ErrorIs(t, err, finance.ErrNotPendingApproval)

	_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID, "manager-1")
	require.NoError(t, err)
	assert.Equal(t, finance.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "manager-1", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
}

func TestFinanceService_Reject_RequiresReason(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())

	_, err := svc.Reject(ctx, "any-id", "   ", "manager-1")
	assert.ErrorIs(t, err, finance.ErrRejectReasonMissing)
}

func TestFinanceService_RejectThenResubmit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	created, err := svc.Create(ctx, validCreateRequest(), "user-1")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, created.ID, "missing receipt", "manager-1")
	require.NoError(t, err)
	assert.Equal(t, finance.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectReason)
	assert.Equal(t, "missing receipt", *rejected.RejectReason)

	// A rejected transaction may go back to pending approval.
	resubmitted, err := svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPendingApproval, resubmitted.Status)
}

func TestFinanceService_SetStatus_IllegalTransition(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())

	created, err := svc.Create(ctx, validCreateRequest(), "user-1")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusApproved}, "user-1")
	assert.ErrorIs(t, err, finance.ErrIllegalTransition)
}

func TestFinanceService_Cancel_FromRecorded(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())

	created, err := svc.Create(ctx, validCreateRequest(), "user-1")
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.StatusCancelled, cancelled.Status)

	// Cancelled is terminal, a second cancel must not succeed.
	_, err = svc.Cancel(ctx, created.ID)
	assert.ErrorIs(t, err, finance.ErrIllegalTransition)
}

func TestFinanceService_Cancel_RefusesApproved(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())

	created, err := svc.Create(ctx, validCreateRequest(), "user-1")
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID, "mgr-1")
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, created.ID)
	assert.ErrorIs(t, err, finance.ErrIllegalTransition)
}

func TestFinanceService_Update_LockedWhenTerminal(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	created, err := svc.Create(ctx, validCreateRequest(), "user-1")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID, "manager-1")
	require.NoError(t, err)

	newCategory := "travel"
	_, err = svc.Update(ctx, finance.UpdateTransactionRequest{ID: created.ID, Category: &newCategory})
	assert.ErrorIs(t, err, finance.ErrTransactionLocked)
}

func TestFinanceService_Delete_RefusesApproved(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	created, err := svc.Create(ctx, validCreateRequest(), "user-1")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID, "manager-1")
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, finance.ErrDeleteApproved)
}

func TestFinanceService_ApproveMany_AccumulatesFailures(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	var ids []string
	for i := 0; i < 4; i++ {
		created, err := svc.Create(ctx, validCreateRequest(), "user-1")
		require.NoError(t, err)
		_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	ids = append(ids, "missing-id")

	result := svc.ApproveMany(ctx, ids, "manager-1")

	assert.Equal(t, 4, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "missing-id", result.Errors[0].ID)
}

func TestFinanceService_ApproveMany_SkipsAlreadyApproved(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	// Five pending transactions, the third approved up front.
	var ids []string
	for i := 0; i < 5; i++ {
		created, err := svc.Create(ctx, validCreateRequest(), "user-1")
		require.NoError(t, err)
		_, err = svc.SetStatus(ctx, finance.SetStatusRequest{ID: created.ID, Status: finance.StatusPendingApproval}, "user-1")
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	_, err := svc.Approve(ctx, ids[2], "manager-1")
	require.NoError(t, err)

	result := svc.ApproveMany(ctx, ids, "manager-1")

	assert.Equal(t, 4, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ids[2], result.Errors[0].ID)
	assert.Contains(t, result.Errors[0].Message, finance.ErrNotPendingApproval.Error())

	for _, id := range ids {
		assert.Equal(t, finance.StatusApproved, repo.transactions[id].Status)
	}
}

func TestFinanceService_ValidateImportData_RowNumbersAndDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())

	rows := []finance.CreateTransactionRequest{
		validCreateRequest(),
		{Type: finance.TypeExpense, Category: "rent", Amount: "0", Date: "2026-05-10"},
		func() finance.CreateTransactionRequest {
			r := validCreateRequest()
			r.Code = "FIN000777"
			return r
		}(),
		func() finance.CreateTransactionRequest {
			r := validCreateRequest()
			r.Code = "FIN000777"
			return r
		}(),
	}

	result, err := svc.ValidateImportData(ctx, rows, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 2, result.ErrorCount)

	var rowNumbers []int
	for _, e := range result.Errors {
		rowNumbers = append(rowNumbers, e.RowNumber)
	}
	assert.Contains(t, rowNumbers, 2)
	assert.Contains(t, rowNumbers, 4)
}

func TestFinanceService_ValidateImportData_StoreFailureIsAnError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	repo.failCodeExists = true
	svc := newTestFinanceService(repo)

	row := validCreateRequest()
	row.Code = "FIN000123"

	// A failing uniqueness lookup must surface, never pass the row.
	result, err := svc.ValidateImportData(ctx, []finance.CreateTransactionRequest{row}, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, result.SuccessCount)
}

func TestFinanceService_ValidateImportData_RelationLookupFailureIsAnError(t *testing.T) {
	ctx := context.Background()
	svc := newTestFinanceService(newFakeTransactionRepo())
	svc.ProjectRepository = &fakeProjectRepo{failLookup: true}

	row := validCreateRequest()
	projectID := "prj-1"
	row.ProjectID = &projectID

	result, err := svc.ValidateImportData(ctx, []finance.CreateTransactionRequest{row}, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, result.SuccessCount)
}

func TestFinanceService_ImportBatch_AbortsOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	repo.failCodeExists = true
	svc := newTestFinanceService(repo)

	row := validCreateRequest()
	row.Code = "FIN000123"

	_, err := svc.ImportBatch(ctx, []finance.CreateTransactionRequest{row}, "user-1")
	require.Error(t, err)
	assert.Empty(t, repo.transactions)
}

func TestFinanceService_ImportBatch_AllOrNothingOnValidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	rows := []finance.CreateTransactionRequest{
		validCreateRequest(),
		{Type: finance.TypeExpense, Category: "rent", Amount: "-1", Date: "2026-05-10"},
	}

	result, err := svc.ImportBatch(ctx, rows, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Empty(t, repo.transactions, "nothing may be persisted when validation fails")
}

func TestFinanceService_ImportBatch_Success(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	rows := []finance.CreateTransactionRequest{
		validCreateRequest(),
		validCreateRequest(),
		validCreateRequest(),
	}

	result, err := svc.ImportBatch(ctx, rows, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Len(t, repo.transactions, 3)
}

func TestFinanceService_ImportBatch_ToleratesPersistenceFailures(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	repo.failCreate = true
	rows := []finance.CreateTransactionRequest{
		validCreateRequest(),
		validCreateRequest(),
	}

	result, err := svc.ImportBatch(ctx, rows, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Len(t, result.Errors, 2)
}

func TestFinanceService_Create_AmountPrecisionKept(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTransactionRepo()
	svc := newTestFinanceService(repo)

	req := validCreateRequest()
	req.Amount = "1234.56"
	resp, err := svc.Create(ctx, req, "user-1")

	require.NoError(t, err)
	stored := repo.transactions[resp.ID]
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("1234.56")))
}
