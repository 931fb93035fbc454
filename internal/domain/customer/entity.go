package customer

import "time"

// Customer is a billing counterparty referenced by finance
// transactions and documents.
type Customer struct {
	ID        string
	Code      string
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	TaxNumber *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
