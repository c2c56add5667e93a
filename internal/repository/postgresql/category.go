package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/category"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type categoryRepository struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) category.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c category.Category) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO categories (name, department)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.Name, c.Department).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return category.Category{}, category.ErrCategoryExists
		}
		return category.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return c, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	var c category.Category
	err := q.QueryRow(ctx, `
		SELECT id, name, department, created_at, updated_at
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Department, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.Category{}, category.ErrCategoryNotFound
		}
		return category.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	return c, nil
}

func (r *categoryRepository) List(ctx context.Context, department string) ([]category.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department, created_at, updated_at
		FROM categories
		WHERE ($1 = '' OR department = $1)
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Department, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, c category.Category) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE categories SET name = $2, department = $3, updated_at = NOW() WHERE id = $1
	`, c.ID, c.Name, c.Department)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

type assigneeRepository struct {
	db *database.DB
}

func NewAssigneeRepository(db *database.DB) category.AssigneeRepository {
	return &assigneeRepository{db: db}
}

func (r *assigneeRepository) Create(ctx context.Context, a category.Assignee) (category.Assignee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignees (employee_id, department, active)
		VALUES ($1, $2, true)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.EmployeeID, a.Department).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return category.Assignee{}, category.ErrAssigneeExists
		}
		return category.Assignee{}, fmt.Errorf("failed to create assignee: %w", err)
	}
	a.Active = true

	return a, nil
}

func (r *assigneeRepository) GetByID(ctx context.Context, id string) (category.Assignee, error) {
	q := GetQuerier(ctx, r.db)

	var a category.Assignee
	err := q.QueryRow(ctx, `
		SELECT a.id, a.employee_id, a.department, a.active, a.created_at, a.updated_at,
		       e.full_name AS employee_name
		FROM assignees a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`, id).Scan(&a.ID, &a.EmployeeID, &a.Department, &a.Active, &a.CreatedAt, &a.UpdatedAt, &a.EmployeeName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.Assignee{}, category.ErrAssigneeNotFound
		}
		return category.Assignee{}, fmt.Errorf("failed to get assignee: %w", err)
	}

	return a, nil
}

func (r *assigneeRepository) List(ctx context.Context, department string) ([]category.Assignee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.department, a.active, a.created_at, a.updated_at,
		       e.full_name AS employee_name
		FROM assignees a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ($1 = '' OR a.department = $1)
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}
	defer rows.Close()

	var assignees []category.Assignee
	for rows.Next() {
		var a category.Assignee
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Department, &a.Active, &a.CreatedAt, &a.UpdatedAt, &a.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan assignee: %w", err)
		}
		assignees = append(assignees, a)
	}

	return assignees, rows.Err()
}

func (r *assigneeRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE assignees SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update assignee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrAssigneeNotFound
	}

	return nil
}

func (r *assigneeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM assignees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrAssigneeNotFound
	}

	return nil
}
