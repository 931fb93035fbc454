package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, code, full_name, email, phone, national_id, department_id, position_id,
		employment_status, join_date, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Code, &emp.FullName, &emp.Email, &emp.Phone, &emp.NationalID,
		&emp.DepartmentID, &emp.PositionID, &emp.EmploymentStatus, &emp.JoinDate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, code, full_name, email, phone, national_id, department_id, position_id,
			employment_status, join_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Code, newEmployee.FullName, newEmployee.Email,
		newEmployee.Phone, newEmployee.NationalID, newEmployee.DepartmentID,
		newEmployee.PositionID, newEmployee.EmploymentStatus, newEmployee.JoinDate,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.code, e.full_name, e.email, e.phone, e.national_id, e.department_id, e.position_id,
			e.employment_status, e.join_date, e.created_at, e.updated_at,
			d.name AS department_name, p.name AS position_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Code, &emp.FullName, &emp.Email, &emp.Phone, &emp.NationalID,
		&emp.DepartmentID, &emp.PositionID, &emp.EmploymentStatus, &emp.JoinDate,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName, &emp.PositionName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET code = $1, full_name = $2, email = $3, phone = $4, national_id = $5,
			department_id = $6, position_id = $7, employment_status = $8, join_date = $9,
			updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		emp.Code, emp.FullName, emp.Email, emp.Phone, emp.NationalID,
		emp.DepartmentID, emp.PositionID, emp.EmploymentStatus, emp.JoinDate, emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.code ILIKE $%d OR e.email ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argPos))
		args = append(args, *filter.DepartmentID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.employment_status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT e.id, e.code, e.full_name, e.email, e.phone, e.national_id, e.department_id, e.position_id,
			e.employment_status, e.join_date, e.created_at, e.updated_at,
			d.name AS department_name, p.name AS position_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE ` + where + `
		ORDER BY e.code ASC`

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Code, &emp.FullName, &emp.Email, &emp.Phone, &emp.NationalID,
			&emp.DepartmentID, &emp.PositionID, &emp.EmploymentStatus, &emp.JoinDate,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName, &emp.PositionName,
		)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (e *employeeRepositoryImpl) existsWhere(ctx context.Context, column string, value string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM employees WHERE %s = $1 AND ($2 = '' OR id <> $2))`, column)

	var exists bool
	if err := q.QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee %s: %w", column, err)
	}
	return exists, nil
}

// CodeExists implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	return e.existsWhere(ctx, "code", code, excludeID)
}

// EmailExists implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	return e.existsWhere(ctx, "email", email, excludeID)
}

// PhoneExists implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) PhoneExists(ctx context.Context, phone string, excludeID string) (bool, error) {
	return e.existsWhere(ctx, "phone", phone, excludeID)
}

// NationalIDExists implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) NationalIDExists(ctx context.Context, nationalID string, excludeID string) (bool, error) {
	return e.existsWhere(ctx, "national_id", nationalID, excludeID)
}

// ExistsByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee: %w", err)
	}
	return exists, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
