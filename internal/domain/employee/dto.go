package employee

import (
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName         string `json:"full_name"`
	Department       string `json:"department"`
	EmploymentStatus string `json:"employment_status"`
	HireDate         string `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName         *string `json:"full_name"`
	Department       *string `json:"department"`
	EmploymentStatus *string `json:"employment_status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Department       string `json:"department"`
	EmploymentStatus string `json:"employment_status"`
	HireDate         string `json:"hire_date"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		FullName:         e.FullName,
		Department:       e.Department,
		EmploymentStatus: e.EmploymentStatus,
		HireDate:         e.HireDate.Format("2006-01-02"),
	}
}

type EmployeeFilter struct {
	Department string
	Page       int
	Limit      int
}

// TenureDays reports whole days employed as of now.
func TenureDays(hireDate time.Time, now time.Time) int {
	if now.Before(hireDate) {
		return 0
	}
	return int(now.Sub(hireDate).Hours() / 24)
}
