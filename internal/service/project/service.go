package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/project"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/codegen"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

const codePrefix = "PRJ"

type ProjectServiceImpl struct {
	project.ProjectRepository
	customerRepo customer.CustomerRepository
	codes        *codegen.Generator
}

func NewProjectService(projectRepo project.ProjectRepository, customerRepo customer.CustomerRepository) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		ProjectRepository: projectRepo,
		customerRepo:      customerRepo,
		codes:             codegen.New(),
	}
}

// Create implements project.Service.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := validator.First(req.Rules()...); err != nil {
		return project.ProjectResponse{}, err
	}

	if req.CustomerID != nil {
		exists, err := s.customerRepo.ExistsByID(ctx, *req.CustomerID)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to check customer: %w", err)
		}
		if !exists {
			return project.ProjectResponse{}, validator.ValidationErrors{{Field: "customer_id", Message: "customer does not exist"}}
		}
	}

	code := req.Code
	if code == "" {
		seed, err := s.ProjectRepository.Count(ctx)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to count projects: %w", err)
		}
		taken := func(ctx context.Context, candidate string) (bool, error) {
			return s.ProjectRepository.CodeExists(ctx, candidate, "")
		}
		code, err = s.codes.Next(ctx, codePrefix, seed, taken)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to generate project code: %w", err)
		}
	} else {
		taken, err := s.ProjectRepository.CodeExists(ctx, code, "")
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if taken {
			return project.ProjectResponse{}, project.ErrProjectCodeTaken
		}
	}

	// Rules already guaranteed these parse.
	budget, _ := decimal.NewFromString(req.Budget)
	start, end := req.ParseDates()

	status := project.StatusPlanned
	if req.Status != nil {
		status = *req.Status
	}

	p := project.Project{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Code:       code,
		Name:       req.Name,
		CustomerID: req.CustomerID,
		Budget:     budget,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
	}

	created, err := s.ProjectRepository.Create(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}
	return project.NewProjectResponse(created), nil
}

// Update implements project.Service.
func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return project.ProjectResponse{}, project.ErrProjectNotFound
		}
		return project.ProjectResponse{}, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.CustomerID != nil {
		exists, err := s.customerRepo.ExistsByID(ctx, *req.CustomerID)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to check customer: %w", err)
		}
		if !exists {
			return project.ProjectResponse{}, validator.ValidationErrors{{Field: "customer_id", Message: "customer does not exist"}}
		}
		p.CustomerID = req.CustomerID
	}
	if req.Budget != nil {
		budget, err := decimal.NewFromString(*req.Budget)
		if err != nil || budget.IsNegative() {
			return project.ProjectResponse{}, validator.ValidationErrors{{Field: "budget", Message: "budget must be a non-negative decimal"}}
		}
		p.Budget = budget
	}
	if req.StartDate != nil {
		start, ok := validator.IsValidDate(*req.StartDate)
		if !ok {
			return project.ProjectResponse{}, validator.ValidationErrors{{Field: "start_date", Message: "start date must be a valid YYYY-MM-DD date"}}
		}
		p.StartDate = start
	}
	if req.EndDate != nil {
		end, ok := validator.IsValidDate(*req.EndDate)
		if !ok {
			return project.ProjectResponse{}, validator.ValidationErrors{{Field: "end_date", Message: "end date must be a valid YYYY-MM-DD date"}}
		}
		p.EndDate = &end
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return project.ProjectResponse{}, validator.ValidationErrors{{Field: "end_date", Message: "end date must not be before start date"}}
	}
	if req.Status != nil {
		switch *req.Status {
		case project.StatusPlanned, project.StatusOngoing, project.StatusCompleted, project.StatusOnHold:
			p.Status = *req.Status
		default:
			return project.ProjectResponse{}, validator.ValidationErrors{{Field: "status", Message: "status is not recognized"}}
		}
	}

	if err := s.ProjectRepository.Update(ctx, p); err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to update project: %w", err)
	}
	return project.NewProjectResponse(p), nil
}

// Get implements project.Service.
func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return project.ProjectResponse{}, project.ErrProjectNotFound
		}
		return project.ProjectResponse{}, fmt.Errorf("failed to get project: %w", err)
	}
	return project.NewProjectResponse(p), nil
}

// List implements project.Service.
func (s *ProjectServiceImpl) List(ctx context.Context, filter project.ListProjectsFilter) (project.ListProjectsResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	projects, total, err := s.ProjectRepository.List(ctx, filter)
	if err != nil {
		return project.ListProjectsResponse{}, fmt.Errorf("failed to list projects: %w", err)
	}

	resp := project.ListProjectsResponse{
		Projects:   make([]project.ProjectResponse, 0, len(projects)),
		TotalItems: total,
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, project.NewProjectResponse(p))
	}
	return resp, nil
}

// Delete implements project.Service.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ProjectRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if err := s.ProjectRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
