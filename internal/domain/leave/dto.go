package leave

import (
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type UpsertCreditRequest struct {
	EmployeeID          string  `json:"employee_id"`
	CurrentBalance      float64 `json:"current_balance"`
	StartingLeaveCredit float64 `json:"starting_leave_credit"`
	StartDate           string  `json:"start_date"`
	NextAccrualDate     string  `json:"next_accrual_date"`
	EmploymentStatus    string  `json:"employment_status"`
}

func (r *UpsertCreditRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid uuid",
		})
	}

	if r.CurrentBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "current_balance",
			Message: "current_balance must not be negative",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.NextAccrualDate != "" {
		if _, ok := validator.IsValidDate(r.NextAccrualDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "next_accrual_date",
				Message: "next_accrual_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AppendHistoryRequest struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Days        float64 `json:"days"`
	Status      string  `json:"status"`
	TicketID    *string `json:"ticket_id"`
}

var historyStatusValues = []string{
	string(HistoryApproved),
	string(HistoryPending),
	string(HistoryRejected),
}

func (r *AppendHistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Days <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be positive",
		})
	}

	if !validator.IsInSlice(r.Status, historyStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Approved, Pending, Rejected",
		})
	}

	if r.TicketID != nil && !validator.IsValidUUID(*r.TicketID) {
		errs = append(errs, validator.ValidationError{
			Field:   "ticket_id",
			Message: "ticket_id must be a valid uuid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreditResponse struct {
	ID                  string            `json:"id"`
	EmployeeID          string            `json:"employee_id"`
	EmployeeName        string            `json:"employee_name"`
	CurrentBalance      float64           `json:"current_balance"`
	StartingLeaveCredit float64           `json:"starting_leave_credit"`
	StartDate           string            `json:"start_date"`
	NextAccrualDate     string            `json:"next_accrual_date"`
	EmploymentStatus    string            `json:"employment_status"`
	TenureDays          int               `json:"tenure_days"`
	UsedDays            float64           `json:"used_days"`
	History             []HistoryResponse `json:"history"`
}

type HistoryResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Days        float64 `json:"days"`
	Status      string  `json:"status"`
	TicketID    *string `json:"ticket_id,omitempty"`
}
