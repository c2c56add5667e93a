package report

import (
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

// ViewMode selects how the reporting window is derived.
type ViewMode string

const (
	ViewWeekly    ViewMode = "weekly"
	ViewMonthly   ViewMode = "monthly"
	ViewDateRange ViewMode = "dateRange"
)

type AbsenteeismRequest struct {
	ViewMode    string   `json:"view_mode"`
	CurrentDate string   `json:"current_date"`
	FromDate    string   `json:"from_date"`
	ToDate      string   `json:"to_date"`
	EmployeeIDs []string `json:"employee_ids"`
	TopN        int      `json:"top_n"`
}

func (r *AbsenteeismRequest) Validate() error {
	var errs validator.ValidationErrors

	switch ViewMode(r.ViewMode) {
	case ViewWeekly, ViewMonthly, ViewDateRange:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "view_mode",
			Message: "view_mode must be one of weekly, monthly, dateRange",
		})
	}

	if r.CurrentDate != "" {
		if _, ok := validator.IsValidDate(r.CurrentDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "current_date",
				Message: "current_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeAbsenteeism is one employee's aggregate over the window.
type EmployeeAbsenteeism struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	ScheduledDays   int     `json:"scheduled_days"`
	Absences        int     `json:"absences"`
	AbsenteeismRate float64 `json:"absenteeism_rate"`
}

type AbsenteeismResponse struct {
	WindowStart string                `json:"window_start"`
	WindowEnd   string                `json:"window_end"`
	OverallRate float64               `json:"overall_rate"`
	Employees   []EmployeeAbsenteeism `json:"employees"`
	TopN        []EmployeeAbsenteeism `json:"top_n"`
}

// Window is an inclusive calendar-day interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains checks day membership with inclusive bounds, ignoring
// time-of-day.
func (w Window) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(w.End.Year(), w.End.Month(), w.End.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// ExportFormat selects the serialization of a report export.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

type ExportRequest struct {
	Kind       string `json:"kind"` // tickets | time | surveys | memos
	Format     string `json:"format"`
	From       string `json:"from"`
	To         string `json:"to"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

var exportKinds = []string{"tickets", "time", "surveys", "memos"}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, exportKinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of tickets, time, surveys, memos",
		})
	}

	switch ExportFormat(r.Format) {
	case FormatCSV, FormatPDF:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or pdf",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Export is a rendered report ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TicketSummary is the header block of a ticket export.
type TicketSummary struct {
	Total                int
	ByCategory           map[string]int
	ByStatus             map[string]int
	AvgResolutionMinutes float64
}

// SurveySummary is the header block of a survey export.
type SurveySummary struct {
	Total         int
	Responses     int
	AverageRating float64
	Distribution  [11]int
}
