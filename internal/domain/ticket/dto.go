package ticket

import (
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type CreateTicketRequest struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Category   string `json:"category"`
	Department string `json:"department"`
}

func (r *CreateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if !validator.IsValidDepartment(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of IT, HR",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTicketRequest struct {
	Status     *string `json:"status"`
	Category   *string `json:"category"`
	AssigneeID *string `json:"assignee_id"`
}

func (r *UpdateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of new, open, ongoing, closed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddNoteRequest struct {
	Body string `json:"body"`
}

func (r *AddNoteRequest) Validate() error {
	var errs validator.ValidationErrors

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

type TicketFilter struct {
	Status     string
	AssigneeID string
	Department string
	CreatedBy  string
	From       string
	To         string
	Page       int
	Limit      int
}

type TicketResponse struct {
	ID           string         `json:"id"`
	Subject      string         `json:"subject"`
	Body         string         `json:"body"`
	Status       string         `json:"status"`
	Category     string         `json:"category"`
	Department   string         `json:"department"`
	CreatedBy    string         `json:"created_by"`
	CreatorName  *string        `json:"creator_name,omitempty"`
	AssigneeID   *string        `json:"assignee_id,omitempty"`
	AssigneeName *string        `json:"assignee_name,omitempty"`
	ResolvedAt   *string        `json:"resolved_at,omitempty"`
	CreatedAt    string         `json:"created_at"`
	Notes        []NoteResponse `json:"notes,omitempty"`
}

type NoteResponse struct {
	ID         string  `json:"id"`
	AuthorID   string  `json:"author_id"`
	AuthorName *string `json:"author_name,omitempty"`
	Body       string  `json:"body"`
	CreatedAt  string  `json:"created_at"`
}
