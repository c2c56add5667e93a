package leave

import "time"

type HistoryStatus string

const (
	HistoryApproved HistoryStatus = "Approved"
	HistoryPending  HistoryStatus = "Pending"
	HistoryRejected HistoryStatus = "Rejected"
)

type LeaveCredit struct {
	ID                  string
	EmployeeID          string
	EmployeeName        string
	CurrentBalance      float64
	StartingLeaveCredit float64
	StartDate           time.Time
	NextAccrualDate     time.Time
	EmploymentStatus    string
	History             []HistoryItem
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type HistoryItem struct {
	ID          string
	CreditID    string
	Date        time.Time
	Description string
	Days        float64
	Status      HistoryStatus
	TicketID    *string
	CreatedAt   time.Time
}

// UsedDays sums the days of approved history entries. Pending and rejected
// requests contribute nothing to the total.
func UsedDays(history []HistoryItem) float64 {
	var used float64
	for _, item := range history {
		if item.Status == HistoryApproved {
			used += item.Days
		}
	}
	return used
}

// TenureDays reports whole days since the employment start date.
func TenureDays(startDate time.Time, now time.Time) int {
	if now.Before(startDate) {
		return 0
	}
	return int(now.Sub(startDate).Hours() / 24)
}
