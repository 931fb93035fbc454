package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/salary"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type SalaryServiceImpl struct {
	salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewSalaryService(salaryRepo salary.SalaryRepository, employeeRepo employee.EmployeeRepository) *SalaryServiceImpl {
	return &SalaryServiceImpl{
		SalaryRepository: salaryRepo,
		employeeRepo:     employeeRepo,
		now:              time.Now,
	}
}

// Create implements salary.Service.
func (s *SalaryServiceImpl) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	if err := validator.First(req.Rules()...); err != nil {
		return salary.SalaryResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return salary.SalaryResponse{}, employee.ErrEmployeeNotFound
	}

	taken, err := s.SalaryRepository.PeriodExists(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to check salary period: %w", err)
	}
	if taken {
		return salary.SalaryResponse{}, salary.ErrPeriodAlreadyPaid
	}

	// Rules already guaranteed these parse.
	base, _ := decimal.NewFromString(req.BaseSalary)
	allowance, _ := decimal.NewFromString(req.Allowance)
	deduction, _ := decimal.NewFromString(req.Deduction)

	rec := salary.Salary{
		ID:          uuid.Must(uuid.NewV7()).String(),
		EmployeeID:  req.EmployeeID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		BaseSalary:  base,
		Allowance:   allowance,
		Deduction:   deduction,
		NetSalary:   salary.Net(base, allowance, deduction),
		Notes:       req.Notes,
	}

	created, err := s.SalaryRepository.Create(ctx, rec)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to create salary record: %w", err)
	}
	return salary.NewSalaryResponse(created), nil
}

// Update implements salary.Service. Paid records are immutable.
func (s *SalaryServiceImpl) Update(ctx context.Context, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
	rec, err := s.SalaryRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	if rec.PaidAt != nil {
		return salary.SalaryResponse{}, salary.ErrSalaryLocked
	}

	apply := func(field string, target *decimal.Decimal, raw *string) error {
		if raw == nil {
			return nil
		}
		d, err := decimal.NewFromString(*raw)
		if err != nil || d.IsNegative() {
			return validator.ValidationErrors{{Field: field, Message: field + " must be a non-negative decimal"}}
		}
		*target = d
		return nil
	}
	if err := apply("base_salary", &rec.BaseSalary, req.BaseSalary); err != nil {
		return salary.SalaryResponse{}, err
	}
	if err := apply("allowance", &rec.Allowance, req.Allowance); err != nil {
		return salary.SalaryResponse{}, err
	}
	if err := apply("deduction", &rec.Deduction, req.Deduction); err != nil {
		return salary.SalaryResponse{}, err
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}
	rec.NetSalary = salary.Net(rec.BaseSalary, rec.Allowance, rec.Deduction)

	if err := s.SalaryRepository.Update(ctx, rec); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to update salary record: %w", err)
	}
	return salary.NewSalaryResponse(rec), nil
}

// MarkPaid implements salary.Service.
func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, id string) (salary.SalaryResponse, error) {
	rec, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	if rec.PaidAt != nil {
		return salary.SalaryResponse{}, salary.ErrSalaryAlreadyPaid
	}

	paidAt := s.now()
	rec.PaidAt = &paidAt
	if err := s.SalaryRepository.Update(ctx, rec); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to mark salary as paid: %w", err)
	}
	return salary.NewSalaryResponse(rec), nil
}

// Get implements salary.Service.
func (s *SalaryServiceImpl) Get(ctx context.Context, id string) (salary.SalaryResponse, error) {
	rec, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return salary.NewSalaryResponse(rec), nil
}

// List implements salary.Service.
func (s *SalaryServiceImpl) List(ctx context.Context, filter salary.ListSalariesFilter) (salary.ListSalariesResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, total, err := s.SalaryRepository.List(ctx, filter)
	if err != nil {
		return salary.ListSalariesResponse{}, fmt.Errorf("failed to list salary records: %w", err)
	}

	resp := salary.ListSalariesResponse{
		Salaries:   make([]salary.SalaryResponse, 0, len(records)),
		TotalItems: total,
	}
	for _, rec := range records {
		resp.Salaries = append(resp.Salaries, salary.NewSalaryResponse(rec))
	}
	return resp, nil
}

// Delete implements salary.Service. Paid records stay on the books.
func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	rec, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.ErrSalaryNotFound
		}
		return fmt.Errorf("failed to get salary record: %w", err)
	}
	if rec.PaidAt != nil {
		return salary.ErrSalaryLocked
	}
	if err := s.SalaryRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	return nil
}
