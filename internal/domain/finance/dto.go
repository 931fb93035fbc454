package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Code          string  `json:"code,omitempty"` // autogenerated when empty
	Type          Type    `json:"type"`
	Category      string  `json:"category"`
	Amount        string  `json:"amount"` // decimal string
	Date          string  `json:"date"`   // YYYY-MM-DD
	Status        *Status `json:"status,omitempty"`
	Description   *string `json:"description,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	ReferenceNo   *string `json:"reference_no,omitempty"`
	ProjectID     *string `json:"project_id,omitempty"`
	CustomerID    *string `json:"customer_id,omitempty"`
	EmployeeID    *string `json:"employee_id,omitempty"`
}

type UpdateTransactionRequest struct {
	ID            string  `json:"id"`
	Code          *string `json:"code,omitempty"`
	Type          *Type   `json:"type,omitempty"`
	Category      *string `json:"category,omitempty"`
	Amount        *string `json:"amount,omitempty"`
	Date          *string `json:"date,omitempty"`
	Description   *string `json:"description,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	ReferenceNo   *string `json:"reference_no,omitempty"`
	ProjectID     *string `json:"project_id,omitempty"`
	CustomerID    *string `json:"customer_id,omitempty"`
	EmployeeID    *string `json:"employee_id,omitempty"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Type          Type    `json:"type"`
	Category      string  `json:"category"`
	Amount        string  `json:"amount"`
	Date          string  `json:"date"`
	Status        Status  `json:"status"`
	Description   *string `json:"description,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	ReferenceNo   *string `json:"reference_no,omitempty"`
	ProjectID     *string `json:"project_id,omitempty"`
	CustomerID    *string `json:"customer_id,omitempty"`
	EmployeeID    *string `json:"employee_id,omitempty"`
	RecordedBy    string  `json:"recorded_by"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
	RejectReason  *string `json:"reject_reason,omitempty"`
}

func NewTransactionResponse(t Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            t.ID,
		Code:          t.Code,
		Type:          t.Type,
		Category:      t.Category,
		Amount:        t.Amount.String(),
		Date:          t.Date.Format("2006-01-02"),
		Status:        t.Status,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		ReferenceNo:   t.ReferenceNo,
		ProjectID:     t.ProjectID,
		CustomerID:    t.CustomerID,
		EmployeeID:    t.EmployeeID,
		RecordedBy:    t.RecordedBy,
		ApprovedBy:    t.ApprovedBy,
		RejectReason:  t.RejectReason,
	}
	if t.ApprovedAt != nil {
		at := t.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}

// ToTransaction converts the request to an entity; amount and date
// parsing failures are reported by the service's validation pass, so
// unparseable values map to zero values here.
func (r *CreateTransactionRequest) ToTransaction(recordedBy string) Transaction {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		amount = decimal.Zero
	}
	date, _ := time.Parse("2006-01-02", r.Date)

	status := StatusRecorded
	if r.Status != nil {
		status = *r.Status
	}

	return Transaction{
		Code:          r.Code,
		Type:          r.Type,
		Category:      r.Category,
		Amount:        amount,
		Date:          date,
		Status:        status,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		ReferenceNo:   r.ReferenceNo,
		ProjectID:     r.ProjectID,
		CustomerID:    r.CustomerID,
		EmployeeID:    r.EmployeeID,
		RecordedBy:    recordedBy,
	}
}

// BatchError reports one failed item in a batch operation. RowNumber is
// 1-indexed for import rows; ID is set for approve/reject batches.
type BatchError struct {
	RowNumber int    `json:"row_number,omitempty"`
	ID        string `json:"id,omitempty"`
	Message   string `json:"message"`
}

// BatchResult accumulates per-item outcomes; batch operations never
// abort on the first failure.
type BatchResult struct {
	SuccessCount int          `json:"success_count"`
	ErrorCount   int          `json:"error_count"`
	Errors       []BatchError `json:"errors,omitempty"`
}

type SetStatusRequest struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

type ListTransactionsFilter struct {
	Type      *Type
	Category  *string
	Status    *Status
	ProjectID *string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalItems   int64                 `json:"total_items"`
}
