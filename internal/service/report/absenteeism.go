package report

import (
	"sort"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/attendance"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/employee"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/report"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
)

// DefaultTopN bounds the offenders list when the request leaves it unset.
const DefaultTopN = 10

// Aggregate computes per-employee and overall absenteeism for the window.
// Scheduled days are schedule entries inside the window excluding rest days;
// absences are attendance records with an absence status. The overall rate
// weighs employees by their scheduled exposure rather than averaging the
// individual rates, so an employee with one scheduled day cannot skew the
// company number.
func Aggregate(
	window report.Window,
	employees []employee.Employee,
	entries []schedule.Entry,
	records []attendance.Record,
	topN int,
) report.AbsenteeismResponse {
	scheduledByEmployee := make(map[string]int)
	for _, e := range entries {
		if !window.Contains(e.Date) {
			continue
		}
		if e.Shift.Type == schedule.ShiftTypeRestDay {
			continue
		}
		scheduledByEmployee[e.EmployeeID]++
	}

	absencesByEmployee := make(map[string]int)
	for _, rec := range records {
		if !window.Contains(rec.Date) {
			continue
		}
		if attendance.IsAbsence(rec.Status) {
			absencesByEmployee[rec.EmployeeID]++
		}
	}

	var totalScheduled, totalAbsences int
	rows := make([]report.EmployeeAbsenteeism, 0, len(employees))
	for _, emp := range employees {
		scheduled := scheduledByEmployee[emp.ID]
		absences := absencesByEmployee[emp.ID]

		rate := 0.0
		if scheduled > 0 {
			rate = float64(absences) / float64(scheduled) * 100
		}

		totalScheduled += scheduled
		totalAbsences += absences

		rows = append(rows, report.EmployeeAbsenteeism{
			EmployeeID:      emp.ID,
			EmployeeName:    emp.FullName,
			ScheduledDays:   scheduled,
			Absences:        absences,
			AbsenteeismRate: rate,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AbsenteeismRate != rows[j].AbsenteeismRate {
			return rows[i].AbsenteeismRate > rows[j].AbsenteeismRate
		}
		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	overall := 0.0
	if totalScheduled > 0 {
		overall = float64(totalAbsences) / float64(totalScheduled) * 100
	}

	if topN <= 0 {
		topN = DefaultTopN
	}
	top := rows
	if len(top) > topN {
		top = top[:topN]
	}

	return report.AbsenteeismResponse{
		WindowStart: window.Start.Format("2006-01-02"),
		WindowEnd:   window.End.Format("2006-01-02"),
		OverallRate: overall,
		Employees:   rows,
		TopN:        top,
	}
}
