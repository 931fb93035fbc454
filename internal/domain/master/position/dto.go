package position

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type Position struct {
	ID           string
	Name         string
	DepartmentID *string
	Level        *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreatePositionRequest struct {
	Name         string  `json:"name"`
	DepartmentID *string `json:"department_id,omitempty"`
	Level        *int    `json:"level,omitempty"`
}

func (r *CreatePositionRequest) Validate() error {
	return validator.First(
		validator.Rule{
			Field:   "name",
			Message: "name is required",
			Valid:   func() bool { return !validator.IsEmpty(r.Name) },
		},
		validator.Rule{
			Field:   "level",
			Message: "level must be between 1 and 10",
			Valid:   func() bool { return r.Level == nil || (*r.Level >= 1 && *r.Level <= 10) },
		},
	)
}

type UpdatePositionRequest struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Level        *int    `json:"level,omitempty"`
}

type PositionResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DepartmentID *string `json:"department_id,omitempty"`
	Level        *int    `json:"level,omitempty"`
}
