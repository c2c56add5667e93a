package attendance

import (
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type RecordRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordFilter struct {
	EmployeeID string
	From       string
	To         string
	Status     string
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Format("2006-01-02"),
		Status:     r.Status,
	}
}

type AddSessionNoteRequest struct {
	Body string `json:"body"`
}

func (r *AddSessionNoteRequest) Validate() error {
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

type SessionResponse struct {
	ID             string                `json:"id"`
	EmployeeID     string                `json:"employee_id"`
	TimeIn         string                `json:"time_in"`
	TimeOut        *string               `json:"time_out,omitempty"`
	ElapsedSeconds int64                 `json:"elapsed_seconds"`
	Open           bool                  `json:"open"`
	Notes          []SessionNoteResponse `json:"notes,omitempty"`
}

type SessionNoteResponse struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

func ToSessionResponse(s TimeSession, now time.Time) SessionResponse {
	resp := SessionResponse{
		ID:             s.ID,
		EmployeeID:     s.EmployeeID,
		TimeIn:         s.TimeIn.Format(time.RFC3339),
		ElapsedSeconds: int64(s.Elapsed(now).Seconds()),
		Open:           s.IsOpen(),
	}
	if s.TimeOut != nil {
		out := s.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &out
	}
	for _, n := range s.Notes {
		resp.Notes = append(resp.Notes, SessionNoteResponse{
			ID:        n.ID,
			Body:      n.Body,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
