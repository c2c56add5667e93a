package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/ticket"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type TicketHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddNote(w http.ResponseWriter, r *http.Request)
}

type TicketHandlerImpl struct {
	ticketService ticket.TicketService
}

func NewTicketHandler(ticketService ticket.TicketService) TicketHandler {
	return &TicketHandlerImpl{ticketService: ticketService}
}

func (h *TicketHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req ticket.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create ticket decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ticketService.Create(r.Context(), claims.UserID, req)
	if err != nil {
		slog.Error("Create ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ticket created", created)
}

func (h *TicketHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ticketService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *TicketHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ticket.TicketFilter{
		Status:     q.Get("status"),
		AssigneeID: q.Get("assignee_id"),
		Department: q.Get("department"),
		CreatedBy:  q.Get("created_by"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	tickets, total, err := h.ticketService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List tickets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, tickets, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *TicketHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req ticket.UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.ticketService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket updated", updated)
}

func (h *TicketHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ticketService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket deleted", nil)
}

func (h *TicketHandlerImpl) AddNote(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req ticket.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	note, err := h.ticketService.AddNote(r.Context(), chi.URLParam(r, "id"), claims.UserID, req)
	if err != nil {
		slog.Error("Add ticket note service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Note added", note)
}
