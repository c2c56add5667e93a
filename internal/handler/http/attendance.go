package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/attendance"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	UpsertRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	TimeIn(w http.ResponseWriter, r *http.Request)
	TimeOut(w http.ResponseWriter, r *http.Request)
	GetActiveSession(w http.ResponseWriter, r *http.Request)
	ListSessions(w http.ResponseWriter, r *http.Request)
	AddSessionNote(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *AttendanceHandlerImpl) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert attendance record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.UpsertRecord(r.Context(), req)
	if err != nil {
		slog.Error("Upsert attendance record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", rec)
}

func (h *AttendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.attendanceService.ListRecords(r.Context(), attendance.RecordFilter{
		EmployeeID: q.Get("employee_id"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Status:     q.Get("status"),
	})
	if err != nil {
		slog.Error("List attendance records service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// employeeIDFromRequest resolves the acting employee: admins may act for
// another employee via the employee_id query param, everyone else acts as
// themselves.
func employeeIDFromRequest(r *http.Request) (string, error) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		return "", err
	}

	if claims.IsAdmin {
		if override := r.URL.Query().Get("employee_id"); override != "" {
			return override, nil
		}
	}

	return claims.EmployeeID, nil
}

func (h *AttendanceHandlerImpl) TimeIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil || employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	session, err := h.attendanceService.TimeIn(r.Context(), employeeID)
	if err != nil {
		slog.Error("Time in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timed in", session)
}

func (h *AttendanceHandlerImpl) TimeOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil || employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	session, err := h.attendanceService.TimeOut(r.Context(), employeeID)
	if err != nil {
		slog.Error("Time out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timed out", session)
}

func (h *AttendanceHandlerImpl) GetActiveSession(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil || employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	session, err := h.attendanceService.GetActiveSession(r.Context(), employeeID)
	if err != nil {
		slog.Error("Get active session service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// No open session is a normal state, not an error.
	response.Success(w, session)
}

func (h *AttendanceHandlerImpl) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	sessions, err := h.attendanceService.ListSessions(r.Context(), employeeID, q.Get("from"), q.Get("to"))
	if err != nil {
		slog.Error("List sessions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sessions)
}

func (h *AttendanceHandlerImpl) AddSessionNote(w http.ResponseWriter, r *http.Request) {
	var req attendance.AddSessionNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	note, err := h.attendanceService.AddSessionNote(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Add session note service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Note added", note)
}
