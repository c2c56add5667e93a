package nte

import (
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type CreateRecordRequest struct {
	EmployeeID string `json:"employee_id"`
	Offense    string `json:"offense"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid uuid",
		})
	}

	if validator.IsEmpty(r.Offense) {
		errs = append(errs, validator.ValidationError{
			Field:   "offense",
			Message: "offense is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest carries admin edits. Status values are accepted as
// sent; the workflow performs no transition validation.
type UpdateRecordRequest struct {
	Status              *string `json:"status"`
	Explanation         *string `json:"explanation"`
	Decision            *string `json:"decision"`
	EmployeeSignature   *string `json:"employee_signature"`
	SupervisorSignature *string `json:"supervisor_signature"`
	HRSignature         *string `json:"hr_signature"`
}

func (r *UpdateRecordRequest) Validate() error {
	// Intentionally permissive: any status string is stored and mapped to a
	// page count on read.
	return nil
}

type RecordResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	Status              string  `json:"status"`
	PageCount           int     `json:"page_count"`
	Offense             string  `json:"offense"`
	Explanation         string  `json:"explanation"`
	Decision            string  `json:"decision"`
	EmployeeSignature   *string `json:"employee_signature,omitempty"`
	SupervisorSignature *string `json:"supervisor_signature,omitempty"`
	HRSignature         *string `json:"hr_signature,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:                  rec.ID,
		EmployeeID:          rec.EmployeeID,
		EmployeeName:        rec.EmployeeName,
		Status:              string(rec.Status),
		PageCount:           PageCount(rec.Status),
		Offense:             rec.Offense,
		Explanation:         rec.Explanation,
		Decision:            rec.Decision,
		EmployeeSignature:   rec.EmployeeSignature,
		SupervisorSignature: rec.SupervisorSignature,
		HRSignature:         rec.HRSignature,
		CreatedAt:           rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
