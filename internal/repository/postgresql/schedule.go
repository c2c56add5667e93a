package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetByEmployeeAndDate matches by calendar day; the date column is DATE, so
// the incoming timestamp is truncated before comparison.
func (r *scheduleRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, shift_type, start_time, end_time, created_at, updated_at
		FROM schedule_entries
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var e schedule.Entry
	err := q.QueryRow(ctx, query, employeeID, schedule.Normalize(date)).Scan(
		&e.ID, &e.EmployeeID, &e.Date, &e.Shift.Type, &e.Shift.StartTime, &e.Shift.EndTime,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no entry for this (employee, day)
		}
		return nil, fmt.Errorf("failed to get schedule entry by employee and date: %w", err)
	}

	return &e, nil
}

func (r *scheduleRepository) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, shift_type, start_time, end_time, created_at, updated_at
		FROM schedule_entries
		WHERE ($1 = '' OR employee_id = $1)
		  AND ($2 = '' OR date >= $2::date)
		  AND ($3 = '' OR date <= $3::date)
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Date, &e.Shift.Type, &e.Shift.StartTime, &e.Shift.EndTime,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *scheduleRepository) Create(ctx context.Context, e schedule.Entry) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	// The caller assigns the entry id; concurrent writes for the same
	// (employee, day) collapse into an update of the existing row.
	query := `
		INSERT INTO schedule_entries (id, employee_id, date, shift_type, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET shift_type = EXCLUDED.shift_type,
		    start_time = EXCLUDED.start_time,
		    end_time = EXCLUDED.end_time,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID,
		e.EmployeeID,
		schedule.Normalize(e.Date),
		e.Shift.Type,
		e.Shift.StartTime,
		e.Shift.EndTime,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to create schedule entry: %w", err)
	}

	return e, nil
}

func (r *scheduleRepository) UpdateShift(ctx context.Context, id string, shift schedule.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_entries
		SET shift_type = $2, start_time = $3, end_time = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, shift.Type, shift.StartTime, shift.EndTime)
	if err != nil {
		return fmt.Errorf("failed to update schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}
