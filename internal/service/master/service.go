package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/master/department"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/master/position"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// MasterServiceImpl manages the reference entities employees point at:
// departments and positions. Deleting one that is still referenced
// surfaces the repository's in-use sentinel unchanged.
type MasterServiceImpl struct {
	department.DepartmentRepository
	position.PositionRepository
}

func NewMasterService(departmentRepo department.DepartmentRepository, positionRepo position.PositionRepository) *MasterServiceImpl {
	return &MasterServiceImpl{
		DepartmentRepository: departmentRepo,
		PositionRepository:   positionRepo,
	}
}

func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	d := department.Department{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        req.Name,
		Description: req.Description,
	}
	created, err := s.DepartmentRepository.Create(ctx, d)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}
	return department.DepartmentResponse{ID: created.ID, Name: created.Name, Description: created.Description}, nil
}

func (s *MasterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	d, err := s.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = req.Description
	}

	check := department.CreateDepartmentRequest{Name: d.Name}
	if err := check.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.DepartmentRepository.Update(ctx, d); err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}
	return department.DepartmentResponse{ID: d.ID, Name: d.Name, Description: d.Description}, nil
}

func (s *MasterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	return department.DepartmentResponse{ID: d.ID, Name: d.Name, Description: d.Description}, nil
}

func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	resp := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		resp = append(resp, department.DepartmentResponse{ID: d.ID, Name: d.Name, Description: d.Description})
	}
	return resp, nil
}

func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}
	if err := s.DepartmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentInUse) {
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (s *MasterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}
	if req.DepartmentID != nil {
		exists, err := s.DepartmentRepository.ExistsByID(ctx, *req.DepartmentID)
		if err != nil {
			return position.PositionResponse{}, fmt.Errorf("failed to check department: %w", err)
		}
		if !exists {
			return position.PositionResponse{}, validator.ValidationErrors{{Field: "department_id", Message: "department does not exist"}}
		}
	}

	p := position.Position{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Level:        req.Level,
	}
	created, err := s.PositionRepository.Create(ctx, p)
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}
	return position.PositionResponse{ID: created.ID, Name: created.Name, DepartmentID: created.DepartmentID, Level: created.Level}, nil
}

func (s *MasterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	p, err := s.PositionRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return position.PositionResponse{}, position.ErrPositionNotFound
		}
		return position.PositionResponse{}, fmt.Errorf("failed to get position: %w", err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.DepartmentID != nil {
		exists, err := s.DepartmentRepository.ExistsByID(ctx, *req.DepartmentID)
		if err != nil {
			return position.PositionResponse{}, fmt.Errorf("failed to check department: %w", err)
		}
		if !exists {
			return position.PositionResponse{}, validator.ValidationErrors{{Field: "department_id", Message: "department does not exist"}}
		}
		p.DepartmentID = req.DepartmentID
	}
	if req.Level != nil {
		p.Level = req.Level
	}

	check := position.CreatePositionRequest{Name: p.Name, Level: p.Level}
	if err := check.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	if err := s.PositionRepository.Update(ctx, p); err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to update position: %w", err)
	}
	return position.PositionResponse{ID: p.ID, Name: p.Name, DepartmentID: p.DepartmentID, Level: p.Level}, nil
}

func (s *MasterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	p, err := s.PositionRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return position.PositionResponse{}, position.ErrPositionNotFound
		}
		return position.PositionResponse{}, fmt.Errorf("failed to get position: %w", err)
	}
	return position.PositionResponse{ID: p.ID, Name: p.Name, DepartmentID: p.DepartmentID, Level: p.Level}, nil
}

func (s *MasterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.PositionRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	resp := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		resp = append(resp, position.PositionResponse{ID: p.ID, Name: p.Name, DepartmentID: p.DepartmentID, Level: p.Level})
	}
	return resp, nil
}

func (s *MasterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if _, err := s.PositionRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return position.ErrPositionNotFound
		}
		return fmt.Errorf("failed to get position: %w", err)
	}
	if err := s.PositionRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, position.ErrPositionInUse) {
			return position.ErrPositionInUse
		}
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}
