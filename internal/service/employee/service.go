package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/codegen"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

const codePrefix = "EMP"

// ReferenceData is the closed employment-status set.
type ReferenceData interface {
	IsValidEmploymentStatus(status string) bool
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	refData ReferenceData
	codes   *codegen.Generator
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, refData ReferenceData) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		refData:            refData,
		codes:              codegen.New(),
	}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := validator.First(req.Rules(s.refData.IsValidEmploymentStatus)...); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkUniqueness(ctx, req, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	code := req.Code
	if code == "" {
		seed, err := s.EmployeeRepository.Count(ctx)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to count employees: %w", err)
		}
		taken := func(ctx context.Context, candidate string) (bool, error) {
			return s.EmployeeRepository.CodeExists(ctx, candidate, "")
		}
		code, err = s.codes.Next(ctx, codePrefix, seed, taken)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee code: %w", err)
		}
	}

	emp := employee.Employee{
		ID:               uuid.Must(uuid.NewV7()).String(),
		Code:             code,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		NationalID:       req.NationalID,
		DepartmentID:     req.DepartmentID,
		PositionID:       req.PositionID,
		EmploymentStatus: req.EmploymentStatus,
		JoinDate:         req.ParseJoinDate(),
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.NewEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) checkUniqueness(ctx context.Context, req employee.CreateEmployeeRequest, excludeID string) error {
	if req.Code != "" {
		taken, err := s.EmployeeRepository.CodeExists(ctx, req.Code, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if taken {
			return employee.ErrEmployeeCodeTaken
		}
	}
	taken, err := s.EmployeeRepository.EmailExists(ctx, req.Email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return employee.ErrEmailTaken
	}
	if req.Phone != nil {
		taken, err := s.EmployeeRepository.PhoneExists(ctx, *req.Phone, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if taken {
			return employee.ErrPhoneTaken
		}
	}
	if req.NationalID != nil {
		taken, err := s.EmployeeRepository.NationalIDExists(ctx, *req.NationalID, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check national id uniqueness: %w", err)
		}
		if taken {
			return employee.ErrNationalIDTaken
		}
	}
	return nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.NationalID != nil {
		emp.NationalID = req.NationalID
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.PositionID != nil {
		emp.PositionID = req.PositionID
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = *req.EmploymentStatus
	}

	check := employee.CreateEmployeeRequest{
		Code:             emp.Code,
		FullName:         emp.FullName,
		Email:            emp.Email,
		Phone:            emp.Phone,
		NationalID:       emp.NationalID,
		EmploymentStatus: emp.EmploymentStatus,
		JoinDate:         emp.JoinDate.Format("2006-01-02"),
	}
	if err := validator.First(check.Rules(s.refData.IsValidEmploymentStatus)...); err != nil {
		return employee.EmployeeResponse{}, err
	}
	// Uniqueness excludes the record itself on update.
	if err := s.checkUniqueness(ctx, check, emp.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) (employee.ListEmployeesResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeesResponse{
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
		TotalItems: total,
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, employee.NewEmployeeResponse(emp))
	}
	return resp, nil
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
