package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeCodeTaken = errors.New("employee code already exists")
	ErrEmailTaken        = errors.New("email already registered")
	ErrPhoneTaken        = errors.New("phone number already registered")
	ErrNationalIDTaken   = errors.New("national id already registered")
)
