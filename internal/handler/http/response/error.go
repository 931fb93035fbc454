package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/document"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/master/department"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/master/position"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/project"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/salary"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Role is not recognized", nil)
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "A session already exists for this employee today")
	case errors.Is(err, attendance.ErrEmployeeInactive):
		Conflict(w, "Employee is not in an active employment status")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open session exists for this employee today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Session has already been checked out")
	case errors.Is(err, attendance.ErrCheckOutBeforeIn):
		BadRequest(w, "Check-out time is earlier than check-in time", nil)

	// Finance domain errors
	case errors.Is(err, finance.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, finance.ErrCodeExists):
		Conflict(w, "Transaction code already exists")
	case errors.Is(err, finance.ErrIllegalTransition):
		Conflict(w, "Status transition is not allowed")
	case errors.Is(err, finance.ErrTransactionLocked):
		Conflict(w, "Approved transactions cannot be modified")
	case errors.Is(err, finance.ErrDeleteApproved):
		Conflict(w, "Approved transactions cannot be deleted")
	case errors.Is(err, finance.ErrNotPendingApproval):
		Conflict(w, "Transaction is not pending approval")
	case errors.Is(err, finance.ErrRejectReasonMissing):
		BadRequest(w, "A rejection reason is required", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeTaken):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrPhoneTaken):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, employee.ErrNationalIDTaken):
		Conflict(w, "National ID already registered")

	// Customer domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, customer.ErrCustomerCodeTaken):
		Conflict(w, "Customer code already exists")
	case errors.Is(err, customer.ErrCustomerEmailTaken):
		Conflict(w, "Customer email already registered")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectCodeTaken):
		Conflict(w, "Project code already exists")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrDocumentCodeTaken):
		Conflict(w, "Document code already exists")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrPeriodAlreadyPaid):
		Conflict(w, "A salary record already exists for this employee and period")
	case errors.Is(err, salary.ErrSalaryAlreadyPaid):
		Conflict(w, "Salary record is already marked as paid")
	case errors.Is(err, salary.ErrSalaryLocked):
		Conflict(w, "Paid salary record can no longer be edited")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department is referenced by employees")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionInUse):
		Conflict(w, "Position is referenced by employees")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
