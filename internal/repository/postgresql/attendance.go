package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

const sessionColumns = `s.id, s.employee_id, s.date, s.check_in, s.check_out, s.working_hours,
		s.status, s.method, s.late_minutes, s.proof_url, s.notes, s.created_at, s.updated_at`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var sess attendance.Session
	err := row.Scan(
		&sess.ID, &sess.EmployeeID, &sess.Date, &sess.CheckIn, &sess.CheckOut,
		&sess.WorkingHours, &sess.Status, &sess.Method, &sess.LateMinutes,
		&sess.ProofURL, &sess.Notes, &sess.CreatedAt, &sess.UpdatedAt,
	)
	return sess, err
}

// Create implements attendance.SessionRepository.
func (s *sessionRepositoryImpl) Create(ctx context.Context, newSession attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, date, check_in, status, method, late_minutes, proof_url, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING id, employee_id, date, check_in, check_out, working_hours,
			status, method, late_minutes, proof_url, notes, created_at, updated_at
	`

	created, err := scanSession(q.QueryRow(ctx, query,
		newSession.ID, newSession.EmployeeID, newSession.Date, newSession.CheckIn,
		newSession.Status, newSession.Method, newSession.LateMinutes,
		newSession.ProofURL, newSession.Notes,
	))
	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to insert attendance session: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.SessionRepository.
func (s *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Session, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + sessionColumns + `, e.full_name AS employee_name
		FROM attendance_sessions s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	var sess attendance.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&sess.ID, &sess.EmployeeID, &sess.Date, &sess.CheckIn, &sess.CheckOut,
		&sess.WorkingHours, &sess.Status, &sess.Method, &sess.LateMinutes,
		&sess.ProofURL, &sess.Notes, &sess.CreatedAt, &sess.UpdatedAt, &sess.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, fmt.Errorf("failed to get attendance session: %w", err)
	}
	return sess, nil
}

// GetByEmployeeAndDate implements attendance.SessionRepository. A nil
// session with nil error means no session exists for that day.
func (s *sessionRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Session, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions s
		WHERE s.employee_id = $1 AND s.date = $2
	`

	sess, err := scanSession(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance session by date: %w", err)
	}
	return &sess, nil
}

// Update implements attendance.SessionRepository.
func (s *sessionRepositoryImpl) Update(ctx context.Context, sess attendance.Session) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE attendance_sessions
		SET check_out = $1, working_hours = $2, status = $3, proof_url = $4, notes = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, sess.CheckOut, sess.WorkingHours, sess.Status, sess.ProofURL, sess.Notes, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}
	return nil
}

// List implements attendance.SessionRepository.
func (s *sessionRepositoryImpl) List(ctx context.Context, filter attendance.ListSessionsFilter) ([]attendance.Session, int64, error) {
	q := GetQuerier(ctx, s.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("s.date >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("s.date <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_sessions s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance sessions: %w", err)
	}

	query := `
		SELECT ` + sessionColumns + `, e.full_name AS employee_name
		FROM attendance_sessions s
		JOIN employees e ON e.id = s.employee_id
		WHERE ` + where + `
		ORDER BY s.date DESC, s.check_in DESC`

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var sess attendance.Session
		err := rows.Scan(
			&sess.ID, &sess.EmployeeID, &sess.Date, &sess.CheckIn, &sess.CheckOut,
			&sess.WorkingHours, &sess.Status, &sess.Method, &sess.LateMinutes,
			&sess.ProofURL, &sess.Notes, &sess.CreatedAt, &sess.UpdatedAt, &sess.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, sess)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}
