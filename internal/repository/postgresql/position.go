package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/master/position"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (id, name, department_id, level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, department_id, level, created_at, updated_at
	`

	var created position.Position
	err := q.QueryRow(ctx, query, p.ID, p.Name, p.DepartmentID, p.Level).Scan(
		&created.ID, &created.Name, &created.DepartmentID, &created.Level,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to insert position: %w", err)
	}
	return created, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	var p position.Position
	err := q.QueryRow(ctx, `SELECT id, name, department_id, level, created_at, updated_at FROM positions WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.DepartmentID, &p.Level, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}
	return p, nil
}

// Update implements position.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, p position.Position) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE positions SET name = $1, department_id = $2, level = $3, updated_at = NOW() WHERE id = $4`,
		p.Name, p.DepartmentID, p.Level, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}

// Delete implements position.PositionRepository. A foreign key
// violation means employees still point at the position.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return position.ErrPositionInUse
		}
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}

// List implements position.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, department_id, level, created_at, updated_at FROM positions ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Level, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// ExistsByID implements position.PositionRepository.
func (r *positionRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM positions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check position: %w", err)
	}
	return exists, nil
}
