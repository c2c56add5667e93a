package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	UpsertShift(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *ScheduleHandlerImpl) UpsertShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.UpsertShift(r.Context(), req)
	if err != nil {
		slog.Error("Upsert shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if resp.FailedDays > 0 {
		slog.Warn("Upsert shift completed with failures", "failed_days", resp.FailedDays)
	}
	response.SuccessWithMessage(w, "Schedule saved", resp)
}

func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries, err := h.scheduleService.List(r.Context(), schedule.ScheduleFilter{
		EmployeeID: q.Get("employee_id"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	})
	if err != nil {
		slog.Error("List schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete schedule entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry deleted", nil)
}
