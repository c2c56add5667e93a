package attendance

import "time"

// Attendance statuses form an open set; these are the ones the aggregation
// logic cares about.
const (
	StatusPresent = "Present"
	StatusNCNS    = "NCNS"
	StatusCallIn  = "Call In"
)

// AbsenceStatuses are the statuses counted as absences by the absenteeism
// report.
var AbsenceStatuses = []string{StatusNCNS, StatusCallIn}

func IsAbsence(status string) bool {
	for _, s := range AbsenceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Record is one observed attendance event for one employee on one date.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TimeSession is a time-tracking session: time-in opens it, time-out closes
// it. Elapsed time for an open session is computed on read.
type TimeSession struct {
	ID         string
	EmployeeID string
	TimeIn     time.Time
	TimeOut    *time.Time
	Notes      []SessionNote
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SessionNote struct {
	ID        string
	SessionID string
	Body      string
	CreatedAt time.Time
}

func (s *TimeSession) IsOpen() bool {
	return s.TimeOut == nil
}

// Elapsed reports the session length as of now, or the closed duration.
func (s *TimeSession) Elapsed(now time.Time) time.Duration {
	if s.TimeOut != nil {
		return s.TimeOut.Sub(s.TimeIn)
	}
	return now.Sub(s.TimeIn)
}
