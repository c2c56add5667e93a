package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/memo"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type memoRepository struct {
	db *database.DB
}

func NewMemoRepository(db *database.DB) memo.MemoRepository {
	return &memoRepository{db: db}
}

func (r *memoRepository) Create(ctx context.Context, m memo.Memo) (memo.Memo, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO memos (title, body, department, created_by, acknowledged_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.Title,
		m.Body,
		m.Department,
		m.CreatedBy,
		m.AcknowledgedBy,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return memo.Memo{}, fmt.Errorf("failed to create memo: %w", err)
	}

	return m, nil
}

func (r *memoRepository) GetByID(ctx context.Context, id string) (memo.Memo, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, body, department, created_by, acknowledged_by, created_at, updated_at
		FROM memos
		WHERE id = $1
	`

	var m memo.Memo
	err := q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Title, &m.Body, &m.Department, &m.CreatedBy, &m.AcknowledgedBy,
		&m.CreatedAt, &m.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return memo.Memo{}, memo.ErrMemoNotFound
		}
		return memo.Memo{}, fmt.Errorf("failed to get memo: %w", err)
	}

	return m, nil
}

func (r *memoRepository) List(ctx context.Context, filter memo.MemoFilter) ([]memo.Memo, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, filter.Department)
		argIdx++
	}
	if filter.From != "" {
		conditions = append(conditions, fmt.Sprintf("created_at::date >= $%d", argIdx))
		args = append(args, filter.From)
		argIdx++
	}
	if filter.To != "" {
		conditions = append(conditions, fmt.Sprintf("created_at::date <= $%d", argIdx))
		args = append(args, filter.To)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM memos WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count memos: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := fmt.Sprintf(`
		SELECT id, title, body, department, created_by, acknowledged_by, created_at, updated_at
		FROM memos
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list memos: %w", err)
	}
	defer rows.Close()

	var memos []memo.Memo
	for rows.Next() {
		var m memo.Memo
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Body, &m.Department, &m.CreatedBy, &m.AcknowledgedBy,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan memo: %w", err)
		}
		memos = append(memos, m)
	}

	return memos, total, rows.Err()
}

func (r *memoRepository) Update(ctx context.Context, m memo.Memo) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE memos
		SET title = $2, body = $3, acknowledged_by = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, m.ID, m.Title, m.Body, m.AcknowledgedBy)
	if err != nil {
		return fmt.Errorf("failed to update memo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return memo.ErrMemoNotFound
	}

	return nil
}

func (r *memoRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM memos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete memo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return memo.ErrMemoNotFound
	}

	return nil
}
