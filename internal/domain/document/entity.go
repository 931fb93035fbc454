package document

import "time"

// Document is an administrative record attached to at most one of a
// project, customer or employee (same exclusivity rule as finance
// transactions).
type Document struct {
	ID         string
	Code       string
	Title      string
	DocType    string
	IssueDate  time.Time
	ExpiryDate *time.Time
	ProjectID  *string
	CustomerID *string
	EmployeeID *string
	FileURL    *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RelationCount counts how many relationship fields are set.
func (d *Document) RelationCount() int {
	count := 0
	if d.ProjectID != nil && *d.ProjectID != "" {
		count++
	}
	if d.CustomerID != nil && *d.CustomerID != "" {
		count++
	}
	if d.EmployeeID != nil && *d.EmployeeID != "" {
		count++
	}
	return count
}
