package schedule

import (
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type UpsertShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ShiftType  string `json:"shift_type"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	RepeatDays int    `json:"repeat_days"`
}

func (r *UpsertShiftRequest) Validate() error {
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

	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "unknown shift type",
		})
	}

	if r.RepeatDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "repeat_days",
			Message: "repeat_days must be at least 1",
		})
	}

	if ShiftType(r.ShiftType).HasTimes() {
		if validator.IsEmpty(r.StartTime) || validator.IsEmpty(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time and end_time are required for timed shift types",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleFilter struct {
	EmployeeID string
	From       string
	To         string
}

type EntryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ShiftType  string `json:"shift_type"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format("2006-01-02"),
		ShiftType:  string(e.Shift.Type),
		StartTime:  e.Shift.StartTime,
		EndTime:    e.Shift.EndTime,
	}
}

// DayResult records the outcome of persisting a single day in a repeat
// upsert. Failures are collected, never fatal.
type DayResult struct {
	Date  string `json:"date"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type UpsertShiftResponse struct {
	Entries    []EntryResponse `json:"entries"`
	DayResults []DayResult     `json:"day_results"`
	FailedDays int             `json:"failed_days"`
}
