package report

import (
	"testing"
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/attendance"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/employee"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/report"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func timedEntry(employeeID, date string) schedule.Entry {
	return schedule.Entry{
		EmployeeID: employeeID,
		Date:       day(date),
		Shift:      schedule.Shift{Type: schedule.ShiftType1, StartTime: "06:00", EndTime: "14:00"},
	}
}

func TestAggregate(t *testing.T) {
	window := report.Window{Start: day("2024-01-08"), End: day("2024-01-14")}

	employees := []employee.Employee{
		{ID: "alice", FullName: "Alice"},
		{ID: "bob", FullName: "Bob"},
	}

	entries := []schedule.Entry{
		timedEntry("alice", "2024-01-08"),
		timedEntry("alice", "2024-01-09"),
		timedEntry("alice", "2024-01-10"),
		timedEntry("alice", "2024-01-11"),
		timedEntry("alice", "2024-01-12"),
		// Rest days never count as scheduled exposure.
		{EmployeeID: "alice", Date: day("2024-01-13"), Shift: schedule.Shift{Type: schedule.ShiftTypeRestDay}},
		timedEntry("bob", "2024-01-08"),
		// Outside the window.
		timedEntry("bob", "2024-01-20"),
	}

	records := []attendance.Record{
		{EmployeeID: "alice", Date: day("2024-01-09"), Status: attendance.StatusNCNS},
		{EmployeeID: "alice", Date: day("2024-01-10"), Status: attendance.StatusCallIn},
		{EmployeeID: "alice", Date: day("2024-01-11"), Status: attendance.StatusPresent},
		// Absence outside the window is ignored.
		{EmployeeID: "bob", Date: day("2024-01-20"), Status: attendance.StatusNCNS},
	}

	resp := Aggregate(window, employees, entries, records, 0)

	assert.Equal(t, "2024-01-08", resp.WindowStart)
	assert.Equal(t, "2024-01-14", resp.WindowEnd)

	require.Len(t, resp.Employees, 2)
	alice := resp.Employees[0]
	assert.Equal(t, "alice", alice.EmployeeID)
	assert.Equal(t, 5, alice.ScheduledDays)
	assert.Equal(t, 2, alice.Absences)
	assert.InDelta(t, 40.0, alice.AbsenteeismRate, 0.001)

	bob := resp.Employees[1]
	assert.Equal(t, 1, bob.ScheduledDays)
	assert.Equal(t, 0, bob.Absences)
	assert.Equal(t, 0.0, bob.AbsenteeismRate)

	// Overall weighs by scheduled exposure: 2 absences over 6 scheduled
	// days, not the mean of the per-employee rates.
	assert.InDelta(t, 100.0*2.0/6.0, resp.OverallRate, 0.001)
}

func TestAggregate_ZeroScheduledIsZeroRate(t *testing.T) {
	window := report.Window{Start: day("2024-01-08"), End: day("2024-01-14")}
	employees := []employee.Employee{{ID: "carol", FullName: "Carol"}}

	resp := Aggregate(window, employees, nil, nil, 0)

	require.Len(t, resp.Employees, 1)
	assert.Equal(t, 0.0, resp.Employees[0].AbsenteeismRate)
	assert.Equal(t, 0.0, resp.OverallRate)
}

func TestAggregate_SortAndTopN(t *testing.T) {
	window := report.Window{Start: day("2024-01-08"), End: day("2024-01-14")}

	employees := []employee.Employee{
		{ID: "zed", FullName: "Zed"},
		{ID: "amy", FullName: "Amy"},
		{ID: "ned", FullName: "Ned"},
	}

	entries := []schedule.Entry{
		timedEntry("zed", "2024-01-08"),
		timedEntry("amy", "2024-01-08"),
		timedEntry("ned", "2024-01-08"),
		timedEntry("ned", "2024-01-09"),
	}

	// Amy and Zed both end at 100%, Ned at 50%.
	records := []attendance.Record{
		{EmployeeID: "zed", Date: day("2024-01-08"), Status: attendance.StatusNCNS},
		{EmployeeID: "amy", Date: day("2024-01-08"), Status: attendance.StatusCallIn},
		{EmployeeID: "ned", Date: day("2024-01-08"), Status: attendance.StatusNCNS},
	}

	resp := Aggregate(window, employees, entries, records, 2)

	// Equal rates tie-break by name ascending.
	require.Len(t, resp.Employees, 3)
	assert.Equal(t, "Amy", resp.Employees[0].EmployeeName)
	assert.Equal(t, "Zed", resp.Employees[1].EmployeeName)
	assert.Equal(t, "Ned", resp.Employees[2].EmployeeName)

	require.Len(t, resp.TopN, 2)
	assert.Equal(t, "Amy", resp.TopN[0].EmployeeName)
	assert.Equal(t, "Zed", resp.TopN[1].EmployeeName)
}

func TestAggregate_TopNDefaultsWhenUnset(t *testing.T) {
	window := report.Window{Start: day("2024-01-08"), End: day("2024-01-14")}

	employees := make([]employee.Employee, 0, DefaultTopN+3)
	entries := make([]schedule.Entry, 0, DefaultTopN+3)
	for i := 0; i < DefaultTopN+3; i++ {
		id := string(rune('a' + i))
		employees = append(employees, employee.Employee{ID: id, FullName: id})
		entries = append(entries, timedEntry(id, "2024-01-08"))
	}

	resp := Aggregate(window, employees, entries, nil, 0)
	assert.Len(t, resp.Employees, DefaultTopN+3)
	assert.Len(t, resp.TopN, DefaultTopN)
}
