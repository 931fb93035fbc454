package employee

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code             string  `json:"code,omitempty"` // autogenerated when empty
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	NationalID       *string `json:"national_id,omitempty"`
	DepartmentID     *string `json:"department_id,omitempty"`
	PositionID       *string `json:"position_id,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	JoinDate         string  `json:"join_date"` // YYYY-MM-DD
}

// Rules returns the field-level rule set shared by the fail-fast
// create path and the accumulate-all validation endpoint. Status
// membership is checked against the injected reference set.
func (r *CreateEmployeeRequest) Rules(validStatus func(string) bool) []validator.Rule {
	return []validator.Rule{
		{
			Field:   "full_name",
			Message: "full name is required",
			Valid:   func() bool { return !validator.IsEmpty(r.FullName) },
		},
		{
			Field:   "full_name",
			Message: "full name must not exceed 150 characters",
			Valid:   func() bool { return validator.MaxLen(r.FullName, 150) },
		},
		{
			Field:   "email",
			Message: "email format is invalid",
			Valid:   func() bool { return validator.IsValidEmail(r.Email) },
		},
		{
			Field:   "phone",
			Message: "phone number format is invalid",
			Valid:   func() bool { return r.Phone == nil || validator.IsValidPhoneNumber(*r.Phone) },
		},
		{
			Field:   "code",
			Message: "code must be 3-20 alphanumeric characters",
			Valid:   func() bool { return r.Code == "" || validator.IsValidCode(r.Code) },
		},
		{
			Field:   "employment_status",
			Message: "employment status is not recognized",
			Valid:   func() bool { return validStatus(r.EmploymentStatus) },
		},
		{
			Field:   "join_date",
			Message: "join date must be a valid YYYY-MM-DD date",
			Valid: func() bool {
				_, ok := validator.IsValidDate(r.JoinDate)
				return ok
			},
		},
	}
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"id"`
	FullName         *string `json:"full_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	NationalID       *string `json:"national_id,omitempty"`
	DepartmentID     *string `json:"department_id,omitempty"`
	PositionID       *string `json:"position_id,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	NationalID       *string `json:"national_id,omitempty"`
	DepartmentID     *string `json:"department_id,omitempty"`
	DepartmentName   *string `json:"department_name,omitempty"`
	PositionID       *string `json:"position_id,omitempty"`
	PositionName     *string `json:"position_name,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	JoinDate         string  `json:"join_date"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Code:             e.Code,
		FullName:         e.FullName,
		Email:            e.Email,
		Phone:            e.Phone,
		NationalID:       e.NationalID,
		DepartmentID:     e.DepartmentID,
		DepartmentName:   e.DepartmentName,
		PositionID:       e.PositionID,
		PositionName:     e.PositionName,
		EmploymentStatus: e.EmploymentStatus,
		JoinDate:         e.JoinDate.Format("2006-01-02"),
	}
}

type ListEmployeesFilter struct {
	Search       string
	DepartmentID *string
	Status       *string
	Page         int
	Limit        int
}

type ListEmployeesResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}

// ParseJoinDate is a helper for services; invalid input was already
// rejected by Rules.
func (r *CreateEmployeeRequest) ParseJoinDate() time.Time {
	t, _ := time.Parse("2006-01-02", r.JoinDate)
	return t
}
