package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/nte"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type NTEHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NTEHandlerImpl struct {
	nteService nte.NTEService
}

func NewNTEHandler(nteService nte.NTEService) NTEHandler {
	return &NTEHandlerImpl{nteService: nteService}
}

func (h *NTEHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req nte.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create NTE decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.nteService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create NTE service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "NTE record created", created)
}

func (h *NTEHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.nteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *NTEHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.nteService.List(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		slog.Error("List NTE records service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func (h *NTEHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req nte.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.nteService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update NTE service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "NTE record updated", updated)
}

func (h *NTEHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.nteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete NTE service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "NTE record deleted", nil)
}
