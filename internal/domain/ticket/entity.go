package ticket

import "time"

type Status string

const (
	StatusNew     Status = "new"
	StatusOpen    Status = "open"
	StatusOngoing Status = "ongoing"
	StatusClosed  Status = "closed"
)

var StatusValues = []string{
	string(StatusNew),
	string(StatusOpen),
	string(StatusOngoing),
	string(StatusClosed),
}

type Ticket struct {
	ID         string
	Subject    string
	Body       string
	Status     Status
	Category   string
	Department string
	CreatedBy  string
	AssigneeID *string
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Notes []Note

	// DTO / Join
	CreatorName  *string
	AssigneeName *string
}

type Note struct {
	ID        string
	TicketID  string
	AuthorID  string
	Body      string
	CreatedAt time.Time

	// DTO / Join
	AuthorName *string
}
