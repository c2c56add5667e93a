package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/leave"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type creditRepository struct {
	db *database.DB
}

func NewCreditRepository(db *database.DB) leave.CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) GetByEmployeeID(ctx context.Context, employeeID string) (leave.LeaveCredit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.current_balance, c.starting_leave_credit,
		       c.start_date, c.next_accrual_date, c.employment_status,
		       c.created_at, c.updated_at,
		       e.full_name AS employee_name
		FROM leave_credits c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.employee_id = $1
	`

	var c leave.LeaveCredit
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&c.ID, &c.EmployeeID, &c.CurrentBalance, &c.StartingLeaveCredit,
		&c.StartDate, &c.NextAccrualDate, &c.EmploymentStatus,
		&c.CreatedAt, &c.UpdatedAt,
		&c.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveCredit{}, leave.ErrCreditNotFound
		}
		return leave.LeaveCredit{}, fmt.Errorf("failed to get leave credit: %w", err)
	}

	history, err := r.ListHistory(ctx, c.ID)
	if err != nil {
		return leave.LeaveCredit{}, err
	}
	c.History = history

	return c, nil
}

func (r *creditRepository) List(ctx context.Context) ([]leave.LeaveCredit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.current_balance, c.starting_leave_credit,
		       c.start_date, c.next_accrual_date, c.employment_status,
		       c.created_at, c.updated_at,
		       e.full_name AS employee_name
		FROM leave_credits c
		LEFT JOIN employees e ON e.id = c.employee_id
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave credits: %w", err)
	}
	defer rows.Close()

	var credits []leave.LeaveCredit
	for rows.Next() {
		var c leave.LeaveCredit
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.CurrentBalance, &c.StartingLeaveCredit,
			&c.StartDate, &c.NextAccrualDate, &c.EmploymentStatus,
			&c.CreatedAt, &c.UpdatedAt,
			&c.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave credit: %w", err)
		}
		credits = append(credits, c)
	}

	return credits, rows.Err()
}

func (r *creditRepository) Upsert(ctx context.Context, c leave.LeaveCredit) (leave.LeaveCredit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_credits (employee_id, current_balance, starting_leave_credit,
			start_date, next_accrual_date, employment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE
		SET current_balance = EXCLUDED.current_balance,
		    starting_leave_credit = EXCLUDED.starting_leave_credit,
		    start_date = EXCLUDED.start_date,
		    next_accrual_date = EXCLUDED.next_accrual_date,
		    employment_status = EXCLUDED.employment_status,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.EmployeeID,
		c.CurrentBalance,
		c.StartingLeaveCredit,
		c.StartDate,
		c.NextAccrualDate,
		c.EmploymentStatus,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return leave.LeaveCredit{}, fmt.Errorf("failed to upsert leave credit: %w", err)
	}

	return c, nil
}

func (r *creditRepository) AppendHistory(ctx context.Context, item leave.HistoryItem) (leave.HistoryItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_credit_history (credit_id, date, description, days, status, ticket_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		item.CreditID,
		item.Date,
		item.Description,
		item.Days,
		item.Status,
		item.TicketID,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return leave.HistoryItem{}, fmt.Errorf("failed to append leave history: %w", err)
	}

	return item, nil
}

func (r *creditRepository) ListHistory(ctx context.Context, creditID string) ([]leave.HistoryItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, credit_id, date, description, days, status, ticket_id, created_at
		FROM leave_credit_history
		WHERE credit_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, creditID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave history: %w", err)
	}
	defer rows.Close()

	var items []leave.HistoryItem
	for rows.Next() {
		var item leave.HistoryItem
		if err := rows.Scan(
			&item.ID, &item.CreditID, &item.Date, &item.Description,
			&item.Days, &item.Status, &item.TicketID, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave history item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
