package customer

import (
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateCustomerRequest struct {
	Code      string  `json:"code,omitempty"` // autogenerated when empty
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	TaxNumber *string `json:"tax_number,omitempty"`
}

// Rules is the field rule set shared by create and import paths.
func (r *CreateCustomerRequest) Rules() []validator.Rule {
	return []validator.Rule{
		{
			Field:   "name",
			Message: "name is required",
			Valid:   func() bool { return !validator.IsEmpty(r.Name) },
		},
		{
			Field:   "name",
			Message: "name must not exceed 150 characters",
			Valid:   func() bool { return validator.MaxLen(r.Name, 150) },
		},
		{
			Field:   "code",
			Message: "code must be 3-20 alphanumeric characters",
			Valid:   func() bool { return r.Code == "" || validator.IsValidCode(r.Code) },
		},
		{
			Field:   "email",
			Message: "email format is invalid",
			Valid:   func() bool { return r.Email == nil || validator.IsValidEmail(*r.Email) },
		},
		{
			Field:   "phone",
			Message: "phone number format is invalid",
			Valid:   func() bool { return r.Phone == nil || validator.IsValidPhoneNumber(*r.Phone) },
		},
		{
			Field:   "address",
			Message: "address must not exceed 300 characters",
			Valid:   func() bool { return r.Address == nil || validator.MaxLen(*r.Address, 300) },
		},
	}
}

type UpdateCustomerRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	TaxNumber *string `json:"tax_number,omitempty"`
}

type CustomerResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	TaxNumber *string `json:"tax_number,omitempty"`
}

func NewCustomerResponse(c Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		TaxNumber: c.TaxNumber,
	}
}

// ImportError reports one failed row in an import, 1-indexed.
type ImportError struct {
	RowNumber int    `json:"row_number"`
	Message   string `json:"message"`
}

type ImportResult struct {
	SuccessCount int           `json:"success_count"`
	ErrorCount   int           `json:"error_count"`
	Errors       []ImportError `json:"errors,omitempty"`
}

type ListCustomersFilter struct {
	Search string
	Page   int
	Limit  int
}

type ListCustomersResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	TotalItems int64              `json:"total_items"`
}
