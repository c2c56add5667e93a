package memo

import (
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type CreateMemoRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Department string `json:"department"`
}

func (r *CreateMemoRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMemoRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func (r *UpdateMemoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MemoFilter struct {
	Department string
	From       string
	To         string
	Page       int
	Limit      int
}

type MemoResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Department     string   `json:"department"`
	CreatedBy      string   `json:"created_by"`
	AcknowledgedBy []string `json:"acknowledged_by"`
	CreatedAt      string   `json:"created_at"`
}

func ToResponse(m Memo) MemoResponse {
	acked := m.AcknowledgedBy
	if acked == nil {
		acked = []string{}
	}
	return MemoResponse{
		ID:             m.ID,
		Title:          m.Title,
		Body:           m.Body,
		Department:     m.Department,
		CreatedBy:      m.CreatedBy,
		AcknowledgedBy: acked,
		CreatedAt:      m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
