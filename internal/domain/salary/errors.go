package salary

import "errors"

var (
	ErrSalaryNotFound    = errors.New("salary record not found")
	ErrPeriodAlreadyPaid = errors.New("a salary record already exists for this employee and period")
	ErrSalaryAlreadyPaid = errors.New("salary record is already marked as paid")
	ErrSalaryLocked      = errors.New("paid salary record can no longer be edited")
)
