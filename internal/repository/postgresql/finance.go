package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) finance.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

const transactionColumns = `id, code, type, category, amount, date, status, description,
		payment_method, reference_no, project_id, customer_id, employee_id,
		recorded_by, approved_by, approved_at, reject_reason, created_at, updated_at`

func scanTransaction(row pgx.Row) (finance.Transaction, error) {
	var tx finance.Transaction
	err := row.Scan(
		&tx.ID, &tx.Code, &tx.Type, &tx.Category, &tx.Amount, &tx.Date, &tx.Status,
		&tx.Description, &tx.PaymentMethod, &tx.ReferenceNo, &tx.ProjectID,
		&tx.CustomerID, &tx.EmployeeID, &tx.RecordedBy, &tx.ApprovedBy,
		&tx.ApprovedAt, &tx.RejectReason, &tx.CreatedAt, &tx.UpdatedAt,
	)
	return tx, err
}

// Create implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) Create(ctx context.Context, newTx finance.Transaction) (finance.Transaction, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO finance_transactions (
			id, code, type, category, amount, date, status, description,
			payment_method, reference_no, project_id, customer_id, employee_id, recorded_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING ` + transactionColumns

	created, err := scanTransaction(q.QueryRow(ctx, query,
		newTx.ID, newTx.Code, newTx.Type, newTx.Category, newTx.Amount, newTx.Date,
		newTx.Status, newTx.Description, newTx.PaymentMethod, newTx.ReferenceNo,
		newTx.ProjectID, newTx.CustomerID, newTx.EmployeeID, newTx.RecordedBy,
	))
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return created, nil
}

// GetByID implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) GetByID(ctx context.Context, id string) (finance.Transaction, error) {
	q := GetQuerier(ctx, t.db)

	query := `SELECT ` + transactionColumns + ` FROM finance_transactions WHERE id = $1`

	tx, err := scanTransaction(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return finance.Transaction{}, finance.ErrTransactionNotFound
		}
		return finance.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// Update implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) Update(ctx context.Context, tx finance.Transaction) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE finance_transactions
		SET code = $1, type = $2, category = $3, amount = $4, date = $5, description = $6,
			payment_method = $7, reference_no = $8, project_id = $9, customer_id = $10,
			employee_id = $11, updated_at = NOW()
		WHERE id = $12
	`

	tag, err := q.Exec(ctx, query,
		tx.Code, tx.Type, tx.Category, tx.Amount, tx.Date, tx.Description,
		tx.PaymentMethod, tx.ReferenceNo, tx.ProjectID, tx.CustomerID,
		tx.EmployeeID, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrTransactionNotFound
	}
	return nil
}

// UpdateStatus implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) UpdateStatus(ctx context.Context, tx finance.Transaction) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE finance_transactions
		SET status = $1, approved_by = $2, approved_at = $3, reject_reason = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, tx.Status, tx.ApprovedBy, tx.ApprovedAt, tx.RejectReason, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrTransactionNotFound
	}
	return nil
}

// Delete implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM finance_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrTransactionNotFound
	}
	return nil
}

// CodeExists implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, t.db)

	query := `SELECT EXISTS (SELECT 1 FROM finance_transactions WHERE code = $1 AND ($2 = '' OR id <> $2))`

	var exists bool
	if err := q.QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transaction code: %w", err)
	}
	return exists, nil
}

// Count implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, t.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM finance_transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// List implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) List(ctx context.Context, filter finance.ListTransactionsFilter) ([]finance.Transaction, int64, error) {
	q := GetQuerier(ctx, t.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}
	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, *filter.Category)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", argPos))
		args = append(args, *filter.ProjectID)
		argPos++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM finance_transactions WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM finance_transactions WHERE ` + where + ` ORDER BY date DESC, code DESC`

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []finance.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// ListByPeriod implements finance.TransactionRepository.
func (t *transactionRepositoryImpl) ListByPeriod(ctx context.Context, from, to time.Time) ([]finance.Transaction, error) {
	q := GetQuerier(ctx, t.db)

	query := `SELECT ` + transactionColumns + ` FROM finance_transactions WHERE date >= $1 AND date <= $2 ORDER BY date ASC`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by period: %w", err)
	}
	defer rows.Close()

	var transactions []finance.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
