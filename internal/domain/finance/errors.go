package finance

import "errors"

// Finance domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCodeExists          = errors.New("transaction code already exists")
	ErrIllegalTransition   = errors.New("status transition is not allowed")
	ErrTransactionLocked   = errors.New("approved transactions cannot be modified")
	ErrDeleteApproved      = errors.New("approved transactions cannot be deleted")
	ErrNotPendingApproval  = errors.New("transaction is not pending approval")
	ErrRejectReasonMissing = errors.New("a rejection reason is required")
)
