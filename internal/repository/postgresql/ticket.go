package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/ticket"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type ticketRepository struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) ticket.TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, t ticket.Ticket) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tickets (subject, body, status, category, department, created_by, assignee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Subject,
		t.Body,
		t.Status,
		t.Category,
		t.Department,
		t.CreatedBy,
		t.AssigneeID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	return t, nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.subject, t.body, t.status, t.category, t.department,
		       t.created_by, t.assignee_id, t.resolved_at, t.created_at, t.updated_at,
		       cu.full_name AS creator_name,
		       ae.full_name AS assignee_name
		FROM tickets t
		LEFT JOIN users cu ON cu.id = t.created_by
		LEFT JOIN employees ae ON ae.id = t.assignee_id
		WHERE t.id = $1
	`

	var t ticket.Ticket
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Subject, &t.Body, &t.Status, &t.Category, &t.Department,
		&t.CreatedBy, &t.AssigneeID, &t.ResolvedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.CreatorName, &t.AssigneeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ticket.Ticket{}, ticket.ErrTicketNotFound
		}
		return ticket.Ticket{}, fmt.Errorf("failed to get ticket: %w", err)
	}

	return t, nil
}

func (r *ticketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]ticket.Ticket, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argIdx))
		args = append(args, value)
		argIdx++
	}

	if filter.Status != "" {
		addCondition("t.status = $%d", filter.Status)
	}
	if filter.AssigneeID != "" {
		addCondition("t.assignee_id = $%d", filter.AssigneeID)
	}
	if filter.Department != "" {
		addCondition("t.department = $%d", filter.Department)
	}
	if filter.CreatedBy != "" {
		addCondition("t.created_by = $%d", filter.CreatedBy)
	}
	if filter.From != "" {
		addCondition("t.created_at::date >= $%d", filter.From)
	}
	if filter.To != "" {
		addCondition("t.created_at::date <= $%d", filter.To)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tickets t WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
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
		SELECT t.id, t.subject, t.body, t.status, t.category, t.department,
		       t.created_by, t.assignee_id, t.resolved_at, t.created_at, t.updated_at,
		       cu.full_name AS creator_name,
		       ae.full_name AS assignee_name
		FROM tickets t
		LEFT JOIN users cu ON cu.id = t.created_by
		LEFT JOIN employees ae ON ae.id = t.assignee_id
		WHERE %s
		ORDER BY t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []ticket.Ticket
	for rows.Next() {
		var t ticket.Ticket
		if err := rows.Scan(
			&t.ID, &t.Subject, &t.Body, &t.Status, &t.Category, &t.Department,
			&t.CreatedBy, &t.AssigneeID, &t.ResolvedAt, &t.CreatedAt, &t.UpdatedAt,
			&t.CreatorName, &t.AssigneeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}

	return tickets, total, rows.Err()
}

func (r *ticketRepository) Update(ctx context.Context, t ticket.Ticket) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tickets
		SET status = $2, category = $3, assignee_id = $4, resolved_at = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, t.ID, t.Status, t.Category, t.AssigneeID, t.ResolvedAt)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ticket.ErrTicketNotFound
	}

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ticket.ErrTicketNotFound
	}

	return nil
}

func (r *ticketRepository) AddNote(ctx context.Context, n ticket.Note) (ticket.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ticket_notes (ticket_id, author_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, n.TicketID, n.AuthorID, n.Body).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return ticket.Note{}, fmt.Errorf("failed to add ticket note: %w", err)
	}

	return n, nil
}

func (r *ticketRepository) ListNotes(ctx context.Context, ticketID string) ([]ticket.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.ticket_id, n.author_id, n.body, n.created_at,
		       u.full_name AS author_name
		FROM ticket_notes n
		LEFT JOIN users u ON u.id = n.author_id
		WHERE n.ticket_id = $1
		ORDER BY n.created_at
	`

	rows, err := q.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket notes: %w", err)
	}
	defer rows.Close()

	var notes []ticket.Note
	for rows.Next() {
		var n ticket.Note
		if err := rows.Scan(&n.ID, &n.TicketID, &n.AuthorID, &n.Body, &n.CreatedAt, &n.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan ticket note: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}
