package ticket

import "context"

type TicketService interface {
	Create(ctx context.Context, createdBy string, req CreateTicketRequest) (TicketResponse, error)
	Get(ctx context.Context, id string) (TicketResponse, error)
	List(ctx context.Context, filter TicketFilter) ([]TicketResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateTicketRequest) (TicketResponse, error)
	Delete(ctx context.Context, id string) error
	AddNote(ctx context.Context, ticketID string, authorID string, req AddNoteRequest) (NoteResponse, error)
}
