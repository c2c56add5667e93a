package nte

import "time"

// Status drives how many pages of the notice document are renderable. The
// workflow accepts any status an admin sends; unrecognized values map to a
// single page.
type Status string

const (
	StatusPER   Status = "PER"   // pending employee response
	StatusPNOD  Status = "PNOD"  // pending notice of decision
	StatusPNODA Status = "PNODA" // pending NOD acknowledgment
	StatusFTHR  Status = "FTHR"  // filed to HR records (terminal)
)

var StatusValues = []string{
	string(StatusPER),
	string(StatusPNOD),
	string(StatusPNODA),
	string(StatusFTHR),
}

// Record is a Notice-to-Explain document.
type Record struct {
	ID                  string
	EmployeeID          string
	Status              Status
	Offense             string
	Explanation         string
	Decision            string
	EmployeeSignature   *string
	SupervisorSignature *string
	HRSignature         *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO / Join
	EmployeeName *string
}
