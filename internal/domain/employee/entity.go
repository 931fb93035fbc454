package employee

import (
	"time"
)

// Employee is the directory record consulted by the attendance and
// finance engines. EmploymentStatus comes from the closed reference
// set; only active statuses may check in.
type Employee struct {
	ID               string
	Code             string
	FullName         string
	Email            string
	Phone            *string
	NationalID       *string
	DepartmentID     *string
	PositionID       *string
	EmploymentStatus string
	JoinDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	DepartmentName *string
	PositionName   *string
}
