package project

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Code       string         `json:"code,omitempty"` // autogenerated when empty
	Name       string         `json:"name"`
	CustomerID *string        `json:"customer_id,omitempty"`
	Budget     string         `json:"budget"` // decimal string
	StartDate  string         `json:"start_date"`
	EndDate    *string        `json:"end_date,omitempty"`
	Status     *ProjectStatus `json:"status,omitempty"`
}

func (r *CreateProjectRequest) Rules() []validator.Rule {
	return []validator.Rule{
		{
			Field:   "name",
			Message: "name is required",
			Valid:   func() bool { return !validator.IsEmpty(r.Name) },
		},
		{
			Field:   "code",
			Message: "code must be 3-20 alphanumeric characters",
			Valid:   func() bool { return r.Code == "" || validator.IsValidCode(r.Code) },
		},
		{
			Field:   "budget",
			Message: "budget must be a non-negative decimal",
			Valid: func() bool {
				budget, err := decimal.NewFromString(r.Budget)
				return err == nil && !budget.IsNegative()
			},
		},
		{
			Field:   "start_date",
			Message: "start date must be a valid YYYY-MM-DD date",
			Valid: func() bool {
				_, ok := validator.IsValidDate(r.StartDate)
				return ok
			},
		},
		{
			Field:   "end_date",
			Message: "end date must not be before start date",
			Valid: func() bool {
				if r.EndDate == nil {
					return true
				}
				start, okStart := validator.IsValidDate(r.StartDate)
				end, okEnd := validator.IsValidDate(*r.EndDate)
				return okStart && okEnd && !end.Before(start)
			},
		},
		{
			Field:   "status",
			Message: "status is not recognized",
			Valid: func() bool {
				if r.Status == nil {
					return true
				}
				switch *r.Status {
				case StatusPlanned, StatusOngoing, StatusCompleted, StatusOnHold:
					return true
				}
				return false
			},
		},
	}
}

type UpdateProjectRequest struct {
	ID         string         `json:"id"`
	Name       *string        `json:"name,omitempty"`
	CustomerID *string        `json:"customer_id,omitempty"`
	Budget     *string        `json:"budget,omitempty"`
	StartDate  *string        `json:"start_date,omitempty"`
	EndDate    *string        `json:"end_date,omitempty"`
	Status     *ProjectStatus `json:"status,omitempty"`
}

type ProjectResponse struct {
	ID         string        `json:"id"`
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	CustomerID *string       `json:"customer_id,omitempty"`
	Budget     string        `json:"budget"`
	StartDate  string        `json:"start_date"`
	EndDate    *string       `json:"end_date,omitempty"`
	Status     ProjectStatus `json:"status"`
}

func NewProjectResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		CustomerID: p.CustomerID,
		Budget:     p.Budget.String(),
		StartDate:  p.StartDate.Format("2006-01-02"),
		Status:     p.Status,
	}
	if p.EndDate != nil {
		end := p.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

type ListProjectsFilter struct {
	Status *ProjectStatus
	Page   int
	Limit  int
}

type ListProjectsResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	TotalItems int64             `json:"total_items"`
}

// ParseDates is a service helper; Rules has already rejected bad input.
func (r *CreateProjectRequest) ParseDates() (time.Time, *time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	if r.EndDate == nil {
		return start, nil
	}
	end, _ := time.Parse("2006-01-02", *r.EndDate)
	return start, &end
}
