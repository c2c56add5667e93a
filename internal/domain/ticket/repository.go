package ticket

import "context"

type TicketRepository interface {
	Create(ctx context.Context, t Ticket) (Ticket, error)
	GetByID(ctx context.Context, id string) (Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]Ticket, int64, error)
	Update(ctx context.Context, t Ticket) error
	Delete(ctx context.Context, id string) error

	AddNote(ctx context.Context, n Note) (Note, error)
	ListNotes(ctx context.Context, ticketID string) ([]Note, error)
}
