package customer

import "errors"

// Customer domain errors
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerCodeTaken  = errors.New("customer code already exists")
	ErrCustomerEmailTaken = errors.New("customer email already registered")
)
