package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/document"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/project"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/codegen"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

const codePrefix = "DOC"

// ReferenceData is the slice of the fixtures catalog this service
// consumes.
type ReferenceData interface {
	IsValidDocumentType(docType string) bool
}

type DocumentServiceImpl struct {
	document.DocumentRepository
	projectRepo  project.ProjectRepository
	customerRepo customer.CustomerRepository
	employeeRepo employee.EmployeeRepository
	refData      ReferenceData
	codes        *codegen.Generator
}

func NewDocumentService(
	documentRepo document.DocumentRepository,
	projectRepo project.ProjectRepository,
	customerRepo customer.CustomerRepository,
	employeeRepo employee.EmployeeRepository,
	refData ReferenceData,
) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepo,
		projectRepo:        projectRepo,
		customerRepo:       customerRepo,
		employeeRepo:       employeeRepo,
		refData:            refData,
		codes:              codegen.New(),
	}
}

// Create implements document.Service.
func (s *DocumentServiceImpl) Create(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	if err := validator.First(req.Rules(s.refData.IsValidDocumentType)...); err != nil {
		return document.DocumentResponse{}, err
	}
	if err := s.checkRelations(ctx, req.ProjectID, req.CustomerID, req.EmployeeID); err != nil {
		return document.DocumentResponse{}, err
	}

	code := req.Code
	if code == "" {
		seed, err := s.DocumentRepository.Count(ctx)
		if err != nil {
			return document.DocumentResponse{}, fmt.Errorf("failed to count documents: %w", err)
		}
		taken := func(ctx context.Context, candidate string) (bool, error) {
			return s.DocumentRepository.CodeExists(ctx, candidate, "")
		}
		code, err = s.codes.Next(ctx, codePrefix, seed, taken)
		if err != nil {
			return document.DocumentResponse{}, fmt.Errorf("failed to generate document code: %w", err)
		}
	} else {
		taken, err := s.DocumentRepository.CodeExists(ctx, code, "")
		if err != nil {
			return document.DocumentResponse{}, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if taken {
			return document.DocumentResponse{}, document.ErrDocumentCodeTaken
		}
	}

	issue, expiry := req.ParseDates()
	d := document.Document{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Code:       code,
		Title:      req.Title,
		DocType:    req.DocType,
		IssueDate:  issue,
		ExpiryDate: expiry,
		ProjectID:  req.ProjectID,
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		FileURL:    req.FileURL,
		Notes:      req.Notes,
	}

	created, err := s.DocumentRepository.Create(ctx, d)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to create document: %w", err)
	}
	return document.NewDocumentResponse(created), nil
}

// checkRelations verifies that whichever single relation is set points
// at an existing row.
func (s *DocumentServiceImpl) checkRelations(ctx context.Context, projectID, customerID, employeeID *string) error {
	if projectID != nil && *projectID != "" {
		exists, err := s.projectRepo.ExistsByID(ctx, *projectID)
		if err != nil {
			return fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return validator.ValidationErrors{{Field: "project_id", Message: "project does not exist"}}
		}
	}
	if customerID != nil && *customerID != "" {
		exists, err := s.customerRepo.ExistsByID(ctx, *customerID)
		if err != nil {
			return fmt.Errorf("failed to check customer: %w", err)
		}
		if !exists {
			return validator.ValidationErrors{{Field: "customer_id", Message: "customer does not exist"}}
		}
	}
	if employeeID != nil && *employeeID != "" {
		exists, err := s.employeeRepo.ExistsByID(ctx, *employeeID)
		if err != nil {
			return fmt.Errorf("failed to check employee: %w", err)
		}
		if !exists {
			return validator.ValidationErrors{{Field: "employee_id", Message: "employee does not exist"}}
		}
	}
	return nil
}

// Update implements document.Service. Relations are fixed at creation;
// only descriptive fields may change.
func (s *DocumentServiceImpl) Update(ctx context.Context, req document.UpdateDocumentRequest) (document.DocumentResponse, error) {
	d, err := s.DocumentRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			return document.DocumentResponse{}, document.ErrDocumentNotFound
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to get document: %w", err)
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.DocType != nil {
		d.DocType = *req.DocType
	}
	if req.IssueDate != nil {
		issue, ok := validator.IsValidDate(*req.IssueDate)
		if !ok {
			return document.DocumentResponse{}, validator.ValidationErrors{{Field: "issue_date", Message: "issue date must be a valid YYYY-MM-DD date"}}
		}
		d.IssueDate = issue
	}
	if req.ExpiryDate != nil {
		expiry, ok := validator.IsValidDate(*req.ExpiryDate)
		if !ok {
			return document.DocumentResponse{}, validator.ValidationErrors{{Field: "expiry_date", Message: "expiry date must be a valid YYYY-MM-DD date"}}
		}
		d.ExpiryDate = &expiry
	}
	if req.FileURL != nil {
		d.FileURL = req.FileURL
	}
	if req.Notes != nil {
		d.Notes = req.Notes
	}

	check := document.CreateDocumentRequest{
		Code:       d.Code,
		Title:      d.Title,
		DocType:    d.DocType,
		IssueDate:  d.IssueDate.Format("2006-01-02"),
		ProjectID:  d.ProjectID,
		CustomerID: d.CustomerID,
		EmployeeID: d.EmployeeID,
	}
	if d.ExpiryDate != nil {
		expiry := d.ExpiryDate.Format("2006-01-02")
		check.ExpiryDate = &expiry
	}
	if err := validator.First(check.Rules(s.refData.IsValidDocumentType)...); err != nil {
		return document.DocumentResponse{}, err
	}

	if err := s.DocumentRepository.Update(ctx, d); err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to update document: %w", err)
	}
	return document.NewDocumentResponse(d), nil
}

// Get implements document.Service.
func (s *DocumentServiceImpl) Get(ctx context.Context, id string) (document.DocumentResponse, error) {
	d, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			return document.DocumentResponse{}, document.ErrDocumentNotFound
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to get document: %w", err)
	}
	return document.NewDocumentResponse(d), nil
}

// List implements document.Service.
func (s *DocumentServiceImpl) List(ctx context.Context, filter document.ListDocumentsFilter) (document.ListDocumentsResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	documents, total, err := s.DocumentRepository.List(ctx, filter)
	if err != nil {
		return document.ListDocumentsResponse{}, fmt.Errorf("failed to list documents: %w", err)
	}

	resp := document.ListDocumentsResponse{
		Documents:  make([]document.DocumentResponse, 0, len(documents)),
		TotalItems: total,
	}
	for _, d := range documents {
		resp.Documents = append(resp.Documents, document.NewDocumentResponse(d))
	}
	return resp, nil
}

// Delete implements document.Service.
func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.DocumentRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			return document.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}
	if err := s.DocumentRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
