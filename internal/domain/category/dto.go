package category

import (
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type CreateCategoryRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
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

type CreateAssigneeRequest struct {
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
}

func (r *CreateAssigneeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid uuid",
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

type CategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type AssigneeResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   string  `json:"department"`
	Active       bool    `json:"active"`
}
