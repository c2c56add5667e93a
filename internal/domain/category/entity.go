package category

import "time"

type Category struct {
	ID         string
	Name       string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Assignee is a support staff member tickets can be routed to.
type Assignee struct {
	ID         string
	EmployeeID string
	Department string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
}
