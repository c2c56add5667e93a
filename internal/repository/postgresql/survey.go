package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/survey"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type surveyRepository struct {
	db *database.DB
}

func NewSurveyRepository(db *database.DB) survey.SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, s survey.Survey) (survey.Survey, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO surveys (title, question, anonymous, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.Title, s.Question, s.Anonymous, s.CreatedBy).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return survey.Survey{}, fmt.Errorf("failed to create survey: %w", err)
	}

	return s, nil
}

func (r *surveyRepository) GetByID(ctx context.Context, id string) (survey.Survey, error) {
	q := GetQuerier(ctx, r.db)

	var s survey.Survey
	err := q.QueryRow(ctx, `
		SELECT id, title, question, anonymous, created_by, created_at, updated_at
		FROM surveys
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Title, &s.Question, &s.Anonymous, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return survey.Survey{}, survey.ErrSurveyNotFound
		}
		return survey.Survey{}, fmt.Errorf("failed to get survey: %w", err)
	}

	responses, err := r.ListResponses(ctx, s.ID)
	if err != nil {
		return survey.Survey{}, err
	}
	s.Responses = responses

	return s, nil
}

func (r *surveyRepository) List(ctx context.Context) ([]survey.Survey, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, title, question, anonymous, created_by, created_at, updated_at
		FROM surveys
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	defer rows.Close()

	var surveys []survey.Survey
	for rows.Next() {
		var s survey.Survey
		if err := rows.Scan(&s.ID, &s.Title, &s.Question, &s.Anonymous, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan survey: %w", err)
		}
		surveys = append(surveys, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One batch query for all responses instead of one per survey.
	byID, err := r.listAllResponses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range surveys {
		surveys[i].Responses = byID[surveys[i].ID]
	}

	return surveys, nil
}

func (r *surveyRepository) listAllResponses(ctx context.Context) (map[string][]survey.Response, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, survey_id, employee_id, rating, comment, created_at
		FROM survey_responses
		ORDER BY survey_id, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list survey responses: %w", err)
	}
	defer rows.Close()

	byID := make(map[string][]survey.Response)
	for rows.Next() {
		var resp survey.Response
		if err := rows.Scan(&resp.ID, &resp.SurveyID, &resp.EmployeeID, &resp.Rating, &resp.Comment, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan survey response: %w", err)
		}
		byID[resp.SurveyID] = append(byID[resp.SurveyID], resp)
	}

	return byID, rows.Err()
}

func (r *surveyRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM surveys WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return survey.ErrSurveyNotFound
	}

	return nil
}

func (r *surveyRepository) AddResponse(ctx context.Context, resp survey.Response) (survey.Response, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO survey_responses (survey_id, employee_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, resp.SurveyID, resp.EmployeeID, resp.Rating, resp.Comment).
		Scan(&resp.ID, &resp.CreatedAt)
	if err != nil {
		return survey.Response{}, fmt.Errorf("failed to add survey response: %w", err)
	}

	return resp, nil
}

func (r *surveyRepository) ListResponses(ctx context.Context, surveyID string) ([]survey.Response, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, survey_id, employee_id, rating, comment, created_at
		FROM survey_responses
		WHERE survey_id = $1
		ORDER BY created_at
	`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list survey responses: %w", err)
	}
	defer rows.Close()

	var responses []survey.Response
	for rows.Next() {
		var resp survey.Response
		if err := rows.Scan(&resp.ID, &resp.SurveyID, &resp.EmployeeID, &resp.Rating, &resp.Comment, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan survey response: %w", err)
		}
		responses = append(responses, resp)
	}

	return responses, rows.Err()
}

func (r *surveyRepository) HasResponded(ctx context.Context, surveyID string, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM survey_responses
			WHERE survey_id = $1 AND employee_id = $2
		)
	`, surveyID, employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check survey response: %w", err)
	}

	return exists, nil
}
