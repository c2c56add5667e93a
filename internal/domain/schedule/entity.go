package schedule

import "time"

type ShiftType string

const (
	ShiftType1        ShiftType = "shift1"
	ShiftType2        ShiftType = "shift2"
	ShiftType3        ShiftType = "shift3"
	ShiftTypeStaff    ShiftType = "staff"
	ShiftTypeRestDay  ShiftType = "restday"
	ShiftTypePTO      ShiftType = "paidTimeOff"
	ShiftTypePlanned  ShiftType = "plannedLeave"
)

var ShiftTypeValues = []string{
	string(ShiftType1),
	string(ShiftType2),
	string(ShiftType3),
	string(ShiftTypeStaff),
	string(ShiftTypeRestDay),
	string(ShiftTypePTO),
	string(ShiftTypePlanned),
}

// HasTimes reports whether a shift type carries start/end times. All other
// types persist empty-string time fields; the schema requires the fields to
// exist even when semantically empty.
func (t ShiftType) HasTimes() bool {
	switch t {
	case ShiftType1, ShiftType2, ShiftType3, ShiftTypeStaff:
		return true
	}
	return false
}

type Shift struct {
	Type      ShiftType
	StartTime string // "HH:MM", empty for non-timed types
	EndTime   string
}

// Entry is one employee's shift on one calendar day. At most one entry may
// exist per (employee, day); lookups compare calendar days, never timestamps.
type Entry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Shift      Shift
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SameDay compares two timestamps by calendar day, ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Normalize strips the time-of-day component so entries key on the day.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
