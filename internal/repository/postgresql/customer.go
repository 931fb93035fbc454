package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type customerRepositoryImpl struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) customer.CustomerRepository {
	return &customerRepositoryImpl{db: db}
}

const customerColumns = `id, code, name, email, phone, address, tax_number, created_at, updated_at`

func scanCustomer(row pgx.Row) (customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Email, &c.Phone, &c.Address, &c.TaxNumber,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Create(ctx context.Context, newCustomer customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO customers (id, code, name, email, phone, address, tax_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + customerColumns

	created, err := scanCustomer(q.QueryRow(ctx, query,
		newCustomer.ID, newCustomer.Code, newCustomer.Name, newCustomer.Email,
		newCustomer.Phone, newCustomer.Address, newCustomer.TaxNumber,
	))
	if err != nil {
		return customer.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}
	return created, nil
}

// GetByID implements customer.CustomerRepository.
func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCustomer(q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, nil
}

// Update implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Update(ctx context.Context, c customer.Customer) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET name = $1, email = $2, phone = $3, address = $4, tax_number = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, c.Name, c.Email, c.Phone, c.Address, c.TaxNumber, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

// Delete implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

// List implements customer.CustomerRepository.
func (r *customerRepositoryImpl) List(ctx context.Context, filter customer.ListCustomersFilter) ([]customer.Customer, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR code ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + where + ` ORDER BY code ASC`

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// CodeExists implements customer.CustomerRepository.
func (r *customerRepositoryImpl) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE code = $1 AND ($2 = '' OR id <> $2))`
	if err := q.QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check customer code: %w", err)
	}
	return exists, nil
}

// EmailExists implements customer.CustomerRepository.
func (r *customerRepositoryImpl) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1 AND ($2 = '' OR id <> $2))`
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}
	return exists, nil
}

// ExistsByID implements customer.CustomerRepository.
func (r *customerRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return exists, nil
}

// Count implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
