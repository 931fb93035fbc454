package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/salary"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `s.id, s.employee_id, s.period_month, s.period_year, s.base_salary,
		s.allowance, s.deduction, s.net_salary, s.paid_at, s.notes, s.created_at, s.updated_at`

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, newSalary salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (
			id, employee_id, period_month, period_year, base_salary, allowance,
			deduction, net_salary, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING id, employee_id, period_month, period_year, base_salary,
			allowance, deduction, net_salary, paid_at, notes, created_at, updated_at
	`

	var created salary.Salary
	err := q.QueryRow(ctx, query,
		newSalary.ID, newSalary.EmployeeID, newSalary.PeriodMonth, newSalary.PeriodYear,
		newSalary.BaseSalary, newSalary.Allowance, newSalary.Deduction,
		newSalary.NetSalary, newSalary.Notes,
	).Scan(
		&created.ID, &created.EmployeeID, &created.PeriodMonth, &created.PeriodYear,
		&created.BaseSalary, &created.Allowance, &created.Deduction, &created.NetSalary,
		&created.PaidAt, &created.Notes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to insert salary record: %w", err)
	}
	return created, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `, e.full_name AS employee_name
		FROM salaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	var rec salary.Salary
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BaseSalary,
		&rec.Allowance, &rec.Deduction, &rec.NetSalary, &rec.PaidAt, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return rec, nil
}

// Update implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Update(ctx context.Context, rec salary.Salary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salaries
		SET base_salary = $1, allowance = $2, deduction = $3, net_salary = $4,
			paid_at = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		rec.BaseSalary, rec.Allowance, rec.Deduction, rec.NetSalary,
		rec.PaidAt, rec.Notes, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, filter salary.ListSalariesFilter) ([]salary.Salary, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.PeriodMonth != nil {
		conditions = append(conditions, fmt.Sprintf("s.period_month = $%d", argPos))
		args = append(args, *filter.PeriodMonth)
		argPos++
	}
	if filter.PeriodYear != nil {
		conditions = append(conditions, fmt.Sprintf("s.period_year = $%d", argPos))
		args = append(args, *filter.PeriodYear)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM salaries s WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	query := `
		SELECT ` + salaryColumns + `, e.full_name AS employee_name
		FROM salaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE ` + where + `
		ORDER BY s.period_year DESC, s.period_month DESC, e.full_name ASC`

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Salary
	for rows.Next() {
		var rec salary.Salary
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BaseSalary,
			&rec.Allowance, &rec.Deduction, &rec.NetSalary, &rec.PaidAt, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// PeriodExists implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) PeriodExists(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM salaries WHERE employee_id = $1 AND period_month = $2 AND period_year = $3)`
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check salary period: %w", err)
	}
	return exists, nil
}
