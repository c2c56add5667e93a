package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/nte"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type nteRecordRepository struct {
	db *database.DB
}

func NewNTERecordRepository(db *database.DB) nte.RecordRepository {
	return &nteRecordRepository{db: db}
}

func (r *nteRecordRepository) Create(ctx context.Context, rec nte.Record) (nte.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO nte_records (employee_id, status, offense, explanation, decision,
			employee_signature, supervisor_signature, hr_signature)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Status,
		rec.Offense,
		rec.Explanation,
		rec.Decision,
		rec.EmployeeSignature,
		rec.SupervisorSignature,
		rec.HRSignature,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return nte.Record{}, fmt.Errorf("failed to create nte record: %w", err)
	}

	return rec, nil
}

func (r *nteRecordRepository) GetByID(ctx context.Context, id string) (nte.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.employee_id, n.status, n.offense, n.explanation, n.decision,
		       n.employee_signature, n.supervisor_signature, n.hr_signature,
		       n.created_at, n.updated_at,
		       e.full_name AS employee_name
		FROM nte_records n
		LEFT JOIN employees e ON e.id = n.employee_id
		WHERE n.id = $1
	`

	var rec nte.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Status, &rec.Offense, &rec.Explanation, &rec.Decision,
		&rec.EmployeeSignature, &rec.SupervisorSignature, &rec.HRSignature,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nte.Record{}, nte.ErrRecordNotFound
		}
		return nte.Record{}, fmt.Errorf("failed to get nte record: %w", err)
	}

	return rec, nil
}

func (r *nteRecordRepository) List(ctx context.Context, employeeID string) ([]nte.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.employee_id, n.status, n.offense, n.explanation, n.decision,
		       n.employee_signature, n.supervisor_signature, n.hr_signature,
		       n.created_at, n.updated_at,
		       e.full_name AS employee_name
		FROM nte_records n
		LEFT JOIN employees e ON e.id = n.employee_id
		WHERE ($1 = '' OR n.employee_id = $1)
		ORDER BY n.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nte records: %w", err)
	}
	defer rows.Close()

	var records []nte.Record
	for rows.Next() {
		var rec nte.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Status, &rec.Offense, &rec.Explanation, &rec.Decision,
			&rec.EmployeeSignature, &rec.SupervisorSignature, &rec.HRSignature,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan nte record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *nteRecordRepository) Update(ctx context.Context, rec nte.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE nte_records
		SET status = $2, offense = $3, explanation = $4, decision = $5,
		    employee_signature = $6, supervisor_signature = $7, hr_signature = $8,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.Status,
		rec.Offense,
		rec.Explanation,
		rec.Decision,
		rec.EmployeeSignature,
		rec.SupervisorSignature,
		rec.HRSignature,
	)
	if err != nil {
		return fmt.Errorf("failed to update nte record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nte.ErrRecordNotFound
	}

	return nil
}

func (r *nteRecordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM nte_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete nte record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nte.ErrRecordNotFound
	}

	return nil
}
