package department

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	return validator.First(
		validator.Rule{
			Field:   "name",
			Message: "name is required",
			Valid:   func() bool { return !validator.IsEmpty(r.Name) },
		},
		validator.Rule{
			Field:   "name",
			Message: "name must not exceed 100 characters",
			Valid:   func() bool { return validator.MaxLen(r.Name, 100) },
		},
	)
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
