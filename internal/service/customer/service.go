package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/codegen"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

const codePrefix = "CUS"

type CustomerServiceImpl struct {
	customer.CustomerRepository
	codes *codegen.Generator
}

func NewCustomerService(customerRepo customer.CustomerRepository) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		CustomerRepository: customerRepo,
		codes:              codegen.New(),
	}
}

// Create implements customer.Service.
func (s *CustomerServiceImpl) Create(ctx context.Context, req customer.CreateCustomerRequest) (customer.CustomerResponse, error) {
	if err := validator.First(req.Rules()...); err != nil {
		return customer.CustomerResponse{}, err
	}
	created, err := s.insert(ctx, req)
	if err != nil {
		return customer.CustomerResponse{}, err
	}
	return customer.NewCustomerResponse(created), nil
}

// insert performs uniqueness checks, code generation and the write.
// Shared by Create and the import loop.
func (s *CustomerServiceImpl) insert(ctx context.Context, req customer.CreateCustomerRequest) (customer.Customer, error) {
	if req.Code != "" {
		taken, err := s.CustomerRepository.CodeExists(ctx, req.Code, "")
		if err != nil {
			return customer.Customer{}, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if taken {
			return customer.Customer{}, customer.ErrCustomerCodeTaken
		}
	}
	if req.Email != nil {
		taken, err := s.CustomerRepository.EmailExists(ctx, *req.Email, "")
		if err != nil {
			return customer.Customer{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			return customer.Customer{}, customer.ErrCustomerEmailTaken
		}
	}

	code := req.Code
	if code == "" {
		seed, err := s.CustomerRepository.Count(ctx)
		if err != nil {
			return customer.Customer{}, fmt.Errorf("failed to count customers: %w", err)
		}
		taken := func(ctx context.Context, candidate string) (bool, error) {
			return s.CustomerRepository.CodeExists(ctx, candidate, "")
		}
		code, err = s.codes.Next(ctx, codePrefix, seed, taken)
		if err != nil {
			return customer.Customer{}, fmt.Errorf("failed to generate customer code: %w", err)
		}
	}

	c := customer.Customer{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Code:      code,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
	}

	created, err := s.CustomerRepository.Create(ctx, c)
	if err != nil {
		return customer.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return created, nil
}

// Update implements customer.Service.
func (s *CustomerServiceImpl) Update(ctx context.Context, req customer.UpdateCustomerRequest) (customer.CustomerResponse, error) {
	c, err := s.CustomerRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return customer.CustomerResponse{}, customer.ErrCustomerNotFound
		}
		return customer.CustomerResponse{}, fmt.Errorf("failed to get customer: %w", err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.TaxNumber != nil {
		c.TaxNumber = req.TaxNumber
	}

	check := customer.CreateCustomerRequest{
		Code:    c.Code,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
	if err := validator.First(check.Rules()...); err != nil {
		return customer.CustomerResponse{}, err
	}

	if c.Email != nil {
		taken, err := s.CustomerRepository.EmailExists(ctx, *c.Email, c.ID)
		if err != nil {
			return customer.CustomerResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			return customer.CustomerResponse{}, customer.ErrCustomerEmailTaken
		}
	}

	if err := s.CustomerRepository.Update(ctx, c); err != nil {
		return customer.CustomerResponse{}, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer.NewCustomerResponse(c), nil
}

// Get implements customer.Service.
func (s *CustomerServiceImpl) Get(ctx context.Context, id string) (customer.CustomerResponse, error) {
	c, err := s.CustomerRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return customer.CustomerResponse{}, customer.ErrCustomerNotFound
		}
		return customer.CustomerResponse{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer.NewCustomerResponse(c), nil
}

// List implements customer.Service.
func (s *CustomerServiceImpl) List(ctx context.Context, filter customer.ListCustomersFilter) (customer.ListCustomersResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	customers, total, err := s.CustomerRepository.List(ctx, filter)
	if err != nil {
		return customer.ListCustomersResponse{}, fmt.Errorf("failed to list customers: %w", err)
	}

	resp := customer.ListCustomersResponse{
		Customers:  make([]customer.CustomerResponse, 0, len(customers)),
		TotalItems: total,
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, customer.NewCustomerResponse(c))
	}
	return resp, nil
}

// Delete implements customer.Service.
func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.CustomerRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return customer.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if err := s.CustomerRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

// ValidateImportData implements customer.Service: all rows checked up
// front, violations 1-indexed, nothing persisted. A store failure
// during the code lookup aborts the pass instead of passing the row.
func (s *CustomerServiceImpl) ValidateImportData(ctx context.Context, rows []customer.CreateCustomerRequest) (customer.ImportResult, error) {
	result := customer.ImportResult{}
	seenCodes := make(map[string]int)

	for i, row := range rows {
		rowNumber := i + 1
		errs := validator.All(row.Rules()...)
		rowFailed := len(errs) > 0
		for _, e := range errs {
			result.Errors = append(result.Errors, customer.ImportError{
				RowNumber: rowNumber,
				Message:   e.Field + ": " + e.Message,
			})
		}

		if row.Code != "" {
			if firstRow, dup := seenCodes[row.Code]; dup {
				result.Errors = append(result.Errors, customer.ImportError{
					RowNumber: rowNumber,
					Message:   fmt.Sprintf("code: duplicates row %d in this import", firstRow),
				})
				rowFailed = true
			} else {
				seenCodes[row.Code] = rowNumber
				taken, err := s.CustomerRepository.CodeExists(ctx, row.Code, "")
				if err != nil {
					return customer.ImportResult{}, fmt.Errorf("failed to check code uniqueness for row %d: %w", rowNumber, err)
				}
				if taken {
					result.Errors = append(result.Errors, customer.ImportError{
						RowNumber: rowNumber,
						Message:   "code: customer code already exists",
					})
					rowFailed = true
				}
			}
		}

		if rowFailed {
			result.ErrorCount++
		} else {
			result.SuccessCount++
		}
	}
	return result, nil
}

// ImportCustomers implements customer.Service: validate everything
// first, then insert row by row with continue-on-error persistence.
func (s *CustomerServiceImpl) ImportCustomers(ctx context.Context, rows []customer.CreateCustomerRequest) (customer.ImportResult, error) {
	validation, err := s.ValidateImportData(ctx, rows)
	if err != nil {
		return customer.ImportResult{}, err
	}
	if validation.ErrorCount > 0 {
		validation.SuccessCount = 0
		return validation, nil
	}

	result := customer.ImportResult{}
	for i, row := range rows {
		if _, err := s.insert(ctx, row); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, customer.ImportError{
				RowNumber: i + 1,
				Message:   err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}
