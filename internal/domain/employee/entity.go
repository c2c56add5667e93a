package employee

import "time"

type Employee struct {
	ID               string
	FullName         string
	Department       string
	EmploymentStatus string
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
