package ticket

import (
	"context"
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/ticket"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type TicketServiceImpl struct {
	db *database.DB
	ticket.TicketRepository
}

func NewTicketService(db *database.DB, ticketRepository ticket.TicketRepository) ticket.TicketService {
	return &TicketServiceImpl{
		db:               db,
		TicketRepository: ticketRepository,
	}
}

func (s *TicketServiceImpl) Create(ctx context.Context, createdBy string, req ticket.CreateTicketRequest) (ticket.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return ticket.TicketResponse{}, err
	}

	created, err := s.TicketRepository.Create(ctx, ticket.Ticket{
		Subject:    req.Subject,
		Body:       req.Body,
		Status:     ticket.StatusNew,
		Category:   req.Category,
		Department: req.Department,
		CreatedBy:  createdBy,
	})
	if err != nil {
		return ticket.TicketResponse{}, err
	}

	return toResponse(created), nil
}

func (s *TicketServiceImpl) Get(ctx context.Context, id string) (ticket.TicketResponse, error) {
	t, err := s.TicketRepository.GetByID(ctx, id)
	if err != nil {
		return ticket.TicketResponse{}, err
	}

	notes, err := s.TicketRepository.ListNotes(ctx, id)
	if err != nil {
		return ticket.TicketResponse{}, err
	}
	t.Notes = notes

	return toResponse(t), nil
}

func (s *TicketServiceImpl) List(ctx context.Context, filter ticket.TicketFilter) ([]ticket.TicketResponse, int64, error) {
	tickets, total, err := s.TicketRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ticket.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, toResponse(t))
	}

	return responses, total, nil
}

func (s *TicketServiceImpl) Update(ctx context.Context, id string, req ticket.UpdateTicketRequest) (ticket.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return ticket.TicketResponse{}, err
	}

	t, err := s.TicketRepository.GetByID(ctx, id)
	if err != nil {
		return ticket.TicketResponse{}, err
	}

	if req.Status != nil {
		t.Status = ticket.Status(*req.Status)
		// Closing stamps the resolution time; reopening clears it.
		if t.Status == ticket.StatusClosed && t.ResolvedAt == nil {
			now := time.Now()
			t.ResolvedAt = &now
		} else if t.Status != ticket.StatusClosed {
			t.ResolvedAt = nil
		}
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.AssigneeID != nil {
		t.AssigneeID = req.AssigneeID
	}

	if err := s.TicketRepository.Update(ctx, t); err != nil {
		return ticket.TicketResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *TicketServiceImpl) Delete(ctx context.Context, id string) error {
	return s.TicketRepository.Delete(ctx, id)
}

func (s *TicketServiceImpl) AddNote(ctx context.Context, ticketID string, authorID string, req ticket.AddNoteRequest) (ticket.NoteResponse, error) {
	if err := req.Validate(); err != nil {
		return ticket.NoteResponse{}, err
	}

	if _, err := s.TicketRepository.GetByID(ctx, ticketID); err != nil {
		return ticket.NoteResponse{}, err
	}

	note, err := s.TicketRepository.AddNote(ctx, ticket.Note{
		TicketID: ticketID,
		AuthorID: authorID,
		Body:     req.Body,
	})
	if err != nil {
		return ticket.NoteResponse{}, err
	}

	return toNoteResponse(note), nil
}

func toResponse(t ticket.Ticket) ticket.TicketResponse {
	resp := ticket.TicketResponse{
		ID:           t.ID,
		Subject:      t.Subject,
		Body:         t.Body,
		Status:       string(t.Status),
		Category:     t.Category,
		Department:   t.Department,
		CreatedBy:    t.CreatedBy,
		CreatorName:  t.CreatorName,
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		CreatedAt:    t.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if t.ResolvedAt != nil {
		resolved := t.ResolvedAt.Format("2006-01-02 15:04:05")
		resp.ResolvedAt = &resolved
	}

	for _, n := range t.Notes {
		resp.Notes = append(resp.Notes, toNoteResponse(n))
	}

	return resp
}

func toNoteResponse(n ticket.Note) ticket.NoteResponse {
	return ticket.NoteResponse{
		ID:         n.ID,
		AuthorID:   n.AuthorID,
		AuthorName: n.AuthorName,
		Body:       n.Body,
		CreatedAt:  n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
