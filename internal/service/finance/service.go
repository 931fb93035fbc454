package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/project"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/codegen"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

const codePrefix = "FIN"

type FinanceServiceImpl struct {
	finance.TransactionRepository
	project.ProjectRepository
	customer.CustomerRepository
	employee.EmployeeRepository
	catalog finance.Catalog
	codes   *codegen.Generator
	now     func() time.Time
}

func NewFinanceService(
	txRepo finance.TransactionRepository,
	projectRepo project.ProjectRepository,
	customerRepo customer.CustomerRepository,
	employeeRepo employee.EmployeeRepository,
	catalog finance.Catalog,
) *FinanceServiceImpl {
	return &FinanceServiceImpl{
		TransactionRepository: txRepo,
		ProjectRepository:     projectRepo,
		CustomerRepository:    customerRepo,
		EmployeeRepository:    employeeRepo,
		catalog:               catalog,
		codes:                 codegen.New(),
		now:                   time.Now,
	}
}

// Create implements finance.Service.
func (s *FinanceServiceImpl) Create(ctx context.Context, req finance.CreateTransactionRequest, recordedBy string) (finance.TransactionResponse, error) {
	tx := req.ToTransaction(recordedBy)

	if !finance.IsValidStatus(tx.Status) {
		return finance.TransactionResponse{}, validator.ValidationErrors{{
			Field: "status", Message: "status is not a recognized value",
		}}
	}

	if err := validator.First(finance.Rules(&tx, s.catalog, s.now())...); err != nil {
		return finance.TransactionResponse{}, err
	}
	if err := s.checkRelations(ctx, &tx); err != nil {
		return finance.TransactionResponse{}, err
	}

	if tx.Code == "" {
		code, err := s.generateCode(ctx)
		if err != nil {
			return finance.TransactionResponse{}, err
		}
		tx.Code = code
	} else {
		taken, err := s.TransactionRepository.CodeExists(ctx, tx.Code, "")
		if err != nil {
			return finance.TransactionResponse{}, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if taken {
			return finance.TransactionResponse{}, finance.ErrCodeExists
		}
	}

	tx.ID = uuid.Must(uuid.NewV7()).String()
	created, err := s.TransactionRepository.Create(ctx, tx)
	if err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return finance.NewTransactionResponse(created), nil
}

func (s *FinanceServiceImpl) generateCode(ctx context.Context) (string, error) {
	seed, err := s.TransactionRepository.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count transactions: %w", err)
	}
	taken := func(ctx context.Context, code string) (bool, error) {
		return s.TransactionRepository.CodeExists(ctx, code, "")
	}
	code, err := s.codes.Next(ctx, codePrefix, seed, taken)
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction code: %w", err)
	}
	return code, nil
}

// checkRelations verifies that a set relationship points at an
// existing record. Exclusivity itself is enforced by the rule set.
func (s *FinanceServiceImpl) checkRelations(ctx context.Context, tx *finance.Transaction) error {
	if tx.ProjectID != nil && *tx.ProjectID != "" {
		exists, err := s.ProjectRepository.ExistsByID(ctx, *tx.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to check project existence: %w", err)
		}
		if !exists {
			return validator.ValidationErrors{{Field: "project_id", Message: "project does not exist"}}
		}
	}
	if tx.CustomerID != nil && *tx.CustomerID != "" {
		exists, err := s.CustomerRepository.ExistsByID(ctx, *tx.CustomerID)
		if err != nil {
			return fmt.Errorf("failed to check customer existence: %w", err)
		}
		if !exists {
			return validator.ValidationErrors{{Field: "customer_id", Message: "customer does not exist"}}
		}
	}
	if tx.EmployeeID != nil && *tx.EmployeeID != "" {
		exists, err := s.EmployeeRepository.ExistsByID(ctx, *tx.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to check employee existence: %w", err)
		}
		if !exists {
			return validator.ValidationErrors{{Field: "employee_id", Message: "employee does not exist"}}
		}
	}
	return nil
}

// Update implements finance.Service. Edits are refused once the
// persisted status is terminal; the status itself only moves through
// the workflow operations.
func (s *FinanceServiceImpl) Update(ctx context.Context, req finance.UpdateTransactionRequest) (finance.TransactionResponse, error) {
	tx, err := s.TransactionRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return finance.TransactionResponse{}, finance.ErrTransactionNotFound
		}
		return finance.TransactionResponse{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	if finance.Terminal(tx.Status) {
		return finance.TransactionResponse{}, finance.ErrTransactionLocked
	}

	applyUpdate(&tx, req)

	if err := validator.First(finance.Rules(&tx, s.catalog, s.now())...); err != nil {
		return finance.TransactionResponse{}, err
	}
	if err := s.checkRelations(ctx, &tx); err != nil {
		return finance.TransactionResponse{}, err
	}

	// Code uniqueness excludes the record itself on update.
	taken, err := s.TransactionRepository.CodeExists(ctx, tx.Code, tx.ID)
	if err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to check code uniqueness: %w", err)
	}
	if taken {
		return finance.TransactionResponse{}, finance.ErrCodeExists
	}

	if err := s.TransactionRepository.Update(ctx, tx); err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to update transaction: %w", err)
	}
	return finance.NewTransactionResponse(tx), nil
}

func applyUpdate(tx *finance.Transaction, req finance.UpdateTransactionRequest) {
	if req.Code != nil {
		tx.Code = *req.Code
	}
	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Amount != nil {
		// Unparseable input zeroes the field so the rule set rejects it.
		if amount, err := decimal.NewFromString(*req.Amount); err == nil {
			tx.Amount = amount
		} else {
			tx.Amount = decimal.Zero
		}
	}
	if req.Date != nil {
		if date, err := time.Parse("2006-01-02", *req.Date); err == nil {
			tx.Date = date
		} else {
			tx.Date = time.Time{}
		}
	}
	if req.Description != nil {
		tx.Description = req.Description
	}
	if req.PaymentMethod != nil {
		tx.PaymentMethod = req.PaymentMethod
	}
	if req.ReferenceNo != nil {
		tx.ReferenceNo = req.ReferenceNo
	}
	if req.ProjectID != nil {
		tx.ProjectID = req.ProjectID
	}
	if req.CustomerID != nil {
		tx.CustomerID = req.CustomerID
	}
	if req.EmployeeID != nil {
		tx.EmployeeID = req.EmployeeID
	}
}

// Get implements finance.Service.
func (s *FinanceServiceImpl) Get(ctx context.Context, id string) (finance.TransactionResponse, error) {
	tx, err := s.TransactionRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return finance.TransactionResponse{}, finance.ErrTransactionNotFound
		}
		return finance.TransactionResponse{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	return finance.NewTransactionResponse(tx), nil
}

// List implements finance.Service.
func (s *FinanceServiceImpl) List(ctx context.Context, filter finance.ListTransactionsFilter) (finance.ListTransactionsResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	txs, total, err := s.TransactionRepository.List(ctx, filter)
	if err != nil {
		return finance.ListTransactionsResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := finance.ListTransactionsResponse{
		Transactions: make([]finance.TransactionResponse, 0, len(txs)),
		TotalItems:   total,
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, finance.NewTransactionResponse(tx))
	}
	return resp, nil
}

// Delete implements finance.Service. Approved transactions are never
// physically deleted.
func (s *FinanceServiceImpl) Delete(ctx context.Context, id string) error {
	tx, err := s.TransactionRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return finance.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx.Status == finance.StatusApproved {
		return finance.ErrDeleteApproved
	}
	if err := s.TransactionRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
