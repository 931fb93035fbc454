package document

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateDocumentRequest struct {
	Code       string  `json:"code,omitempty"` // autogenerated when empty
	Title      string  `json:"title"`
	DocType    string  `json:"doc_type"`
	IssueDate  string  `json:"issue_date"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
	ProjectID  *string `json:"project_id,omitempty"`
	CustomerID *string `json:"customer_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	FileURL    *string `json:"file_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Rules is the document validation family. Doc type membership checks
// the injected reference set; the relationship exclusivity rule is the
// same one finance transactions carry.
func (r *CreateDocumentRequest) Rules(validDocType func(string) bool) []validator.Rule {
	return []validator.Rule{
		{
			Field:   "title",
			Message: "title is required",
			Valid:   func() bool { return !validator.IsEmpty(r.Title) },
		},
		{
			Field:   "title",
			Message: "title must not exceed 200 characters",
			Valid:   func() bool { return validator.MaxLen(r.Title, 200) },
		},
		{
			Field:   "code",
			Message: "code must be 3-20 alphanumeric characters",
			Valid:   func() bool { return r.Code == "" || validator.IsValidCode(r.Code) },
		},
		{
			Field:   "doc_type",
			Message: "document type is not recognized",
			Valid:   func() bool { return validDocType(r.DocType) },
		},
		{
			Field:   "issue_date",
			Message: "issue date must be a valid YYYY-MM-DD date",
			Valid: func() bool {
				_, ok := validator.IsValidDate(r.IssueDate)
				return ok
			},
		},
		{
			Field:   "expiry_date",
			Message: "expiry date must not be before issue date",
			Valid: func() bool {
				if r.ExpiryDate == nil {
					return true
				}
				issue, okIssue := validator.IsValidDate(r.IssueDate)
				expiry, okExpiry := validator.IsValidDate(*r.ExpiryDate)
				return okIssue && okExpiry && !expiry.Before(issue)
			},
		},
		{
			Field:   "relations",
			Message: "at most one of project_id, customer_id, employee_id may be set",
			Valid: func() bool {
				doc := Document{ProjectID: r.ProjectID, CustomerID: r.CustomerID, EmployeeID: r.EmployeeID}
				return doc.RelationCount() <= 1
			},
		},
	}
}

type UpdateDocumentRequest struct {
	ID         string  `json:"id"`
	Title      *string `json:"title,omitempty"`
	DocType    *string `json:"doc_type,omitempty"`
	IssueDate  *string `json:"issue_date,omitempty"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
	FileURL    *string `json:"file_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type DocumentResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Title      string  `json:"title"`
	DocType    string  `json:"doc_type"`
	IssueDate  string  `json:"issue_date"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
	ProjectID  *string `json:"project_id,omitempty"`
	CustomerID *string `json:"customer_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	FileURL    *string `json:"file_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func NewDocumentResponse(d Document) DocumentResponse {
	resp := DocumentResponse{
		ID:         d.ID,
		Code:       d.Code,
		Title:      d.Title,
		DocType:    d.DocType,
		IssueDate:  d.IssueDate.Format("2006-01-02"),
		ProjectID:  d.ProjectID,
		CustomerID: d.CustomerID,
		EmployeeID: d.EmployeeID,
		FileURL:    d.FileURL,
		Notes:      d.Notes,
	}
	if d.ExpiryDate != nil {
		expiry := d.ExpiryDate.Format("2006-01-02")
		resp.ExpiryDate = &expiry
	}
	return resp
}

type ListDocumentsFilter struct {
	DocType    *string
	EmployeeID *string
	Page       int
	Limit      int
}

type ListDocumentsResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	TotalItems int64              `json:"total_items"`
}

// ParseDates is a service helper; Rules has already rejected bad input.
func (r *CreateDocumentRequest) ParseDates() (time.Time, *time.Time) {
	issue, _ := time.Parse("2006-01-02", r.IssueDate)
	if r.ExpiryDate == nil {
		return issue, nil
	}
	expiry, _ := time.Parse("2006-01-02", *r.ExpiryDate)
	return issue, &expiry
}
