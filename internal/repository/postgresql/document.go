package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/document"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `id, code, title, doc_type, issue_date, expiry_date, project_id,
		customer_id, employee_id, file_url, notes, created_at, updated_at`

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID, &d.Code, &d.Title, &d.DocType, &d.IssueDate, &d.ExpiryDate,
		&d.ProjectID, &d.CustomerID, &d.EmployeeID, &d.FileURL, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, newDocument document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (
			id, code, title, doc_type, issue_date, expiry_date, project_id,
			customer_id, employee_id, file_url, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query,
		newDocument.ID, newDocument.Code, newDocument.Title, newDocument.DocType,
		newDocument.IssueDate, newDocument.ExpiryDate, newDocument.ProjectID,
		newDocument.CustomerID, newDocument.EmployeeID, newDocument.FileURL, newDocument.Notes,
	))
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to insert document: %w", err)
	}
	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDocument(q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

// Update implements document.DocumentRepository.
func (r *documentRepositoryImpl) Update(ctx context.Context, d document.Document) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE documents
		SET title = $1, doc_type = $2, issue_date = $3, expiry_date = $4,
			file_url = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query, d.Title, d.DocType, d.IssueDate, d.ExpiryDate, d.FileURL, d.Notes, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context, filter document.ListDocumentsFilter) ([]document.Document, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.DocType != nil {
		conditions = append(conditions, fmt.Sprintf("doc_type = $%d", argPos))
		args = append(args, *filter.DocType)
		argPos++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE ` + where + ` ORDER BY issue_date DESC`

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, err
		}
		documents = append(documents, d)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}

// CodeExists implements document.DocumentRepository.
func (r *documentRepositoryImpl) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM documents WHERE code = $1 AND ($2 = '' OR id <> $2))`
	if err := q.QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check document code: %w", err)
	}
	return exists, nil
}

// Count implements document.DocumentRepository.
func (r *documentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}
