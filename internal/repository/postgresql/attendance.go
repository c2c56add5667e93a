package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/attendance"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type attendanceRecordRepository struct {
	db *database.DB
}

func NewAttendanceRecordRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRecordRepository{db: db}
}

func (r *attendanceRecordRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rec.EmployeeID, rec.Date, rec.Status).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRecordRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rec.EmployeeID, rec.Date, rec.Status).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRecordRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance_records
		WHERE ($1 = '' OR employee_id = $1)
		  AND ($2 = '' OR date >= $2::date)
		  AND ($3 = '' OR date <= $3::date)
		  AND ($4 = '' OR status = $4)
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.From, filter.To, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *attendanceRecordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s attendance.TimeSession) (attendance.TimeSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_sessions (employee_id, time_in)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.EmployeeID, s.TimeIn).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return attendance.TimeSession{}, fmt.Errorf("failed to create time session: %w", err)
	}

	return s, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (attendance.TimeSession, error) {
	q := GetQuerier(ctx, r.db)

	var s attendance.TimeSession
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, time_in, time_out, created_at, updated_at
		FROM time_sessions
		WHERE id = $1
	`, id).Scan(&s.ID, &s.EmployeeID, &s.TimeIn, &s.TimeOut, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeSession{}, attendance.ErrSessionNotFound
		}
		return attendance.TimeSession{}, fmt.Errorf("failed to get time session: %w", err)
	}

	notes, err := r.listNotes(ctx, s.ID)
	if err != nil {
		return attendance.TimeSession{}, err
	}
	s.Notes = notes

	return s, nil
}

func (r *sessionRepository) GetOpenSession(ctx context.Context, employeeID string) (*attendance.TimeSession, error) {
	q := GetQuerier(ctx, r.db)

	var s attendance.TimeSession
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, time_in, time_out, created_at, updated_at
		FROM time_sessions
		WHERE employee_id = $1 AND time_out IS NULL
		ORDER BY time_in DESC
		LIMIT 1
	`, employeeID).Scan(&s.ID, &s.EmployeeID, &s.TimeIn, &s.TimeOut, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open time session: %w", err)
	}

	notes, err := r.listNotes(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Notes = notes

	return &s, nil
}

func (r *sessionRepository) Close(ctx context.Context, id string, timeOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_sessions
		SET time_out = $2, updated_at = NOW()
		WHERE id = $1 AND time_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, timeOut)
	if err != nil {
		return fmt.Errorf("failed to close time session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) List(ctx context.Context, employeeID string, from, to string) ([]attendance.TimeSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, time_in, time_out, created_at, updated_at
		FROM time_sessions
		WHERE ($1 = '' OR employee_id = $1)
		  AND ($2 = '' OR time_in >= $2::date)
		  AND ($3 = '' OR time_in < ($3::date + INTERVAL '1 day'))
		ORDER BY time_in DESC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.TimeSession
	for rows.Next() {
		var s attendance.TimeSession
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.TimeIn, &s.TimeOut, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *sessionRepository) AddNote(ctx context.Context, n attendance.SessionNote) (attendance.SessionNote, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_session_notes (session_id, body)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, n.SessionID, n.Body).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return attendance.SessionNote{}, fmt.Errorf("failed to add session note: %w", err)
	}

	return n, nil
}

func (r *sessionRepository) CloseStaleBefore(ctx context.Context, cutoff time.Time, closeAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_sessions
		SET time_out = $2, updated_at = NOW()
		WHERE time_out IS NULL AND time_in < $1
	`

	tag, err := q.Exec(ctx, query, cutoff, closeAt)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale time sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *sessionRepository) listNotes(ctx context.Context, sessionID string) ([]attendance.SessionNote, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, session_id, body, created_at
		FROM time_session_notes
		WHERE session_id = $1
		ORDER BY created_at
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session notes: %w", err)
	}
	defer rows.Close()

	var notes []attendance.SessionNote
	for rows.Next() {
		var n attendance.SessionNote
		if err := rows.Scan(&n.ID, &n.SessionID, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session note: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}
