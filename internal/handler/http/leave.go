package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/leave"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	GetCredit(w http.ResponseWriter, r *http.Request)
	ListCredits(w http.ResponseWriter, r *http.Request)
	UpsertCredit(w http.ResponseWriter, r *http.Request)
	AppendHistory(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func (h *LeaveHandlerImpl) GetCredit(w http.ResponseWriter, r *http.Request) {
	credit, err := h.leaveService.GetCredit(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		// Not found is an expected state here; the client starts the
		// create flow off the 404.
		response.HandleError(w, err)
		return
	}

	response.Success(w, credit)
}

func (h *LeaveHandlerImpl) ListCredits(w http.ResponseWriter, r *http.Request) {
	credits, err := h.leaveService.ListCredits(r.Context())
	if err != nil {
		slog.Error("List leave credits service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *LeaveHandlerImpl) UpsertCredit(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert leave credit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	credit, err := h.leaveService.UpsertCredit(r.Context(), req)
	if err != nil {
		slog.Error("Upsert leave credit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave credit saved", credit)
}

func (h *LeaveHandlerImpl) AppendHistory(w http.ResponseWriter, r *http.Request) {
	var req leave.AppendHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	credit, err := h.leaveService.AppendHistory(r.Context(), chi.URLParam(r, "employeeID"), req)
	if err != nil {
		slog.Error("Append leave history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave history recorded", credit)
}
