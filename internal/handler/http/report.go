package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/report"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Absenteeism(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func (h *ReportHandlerImpl) Absenteeism(w http.ResponseWriter, r *http.Request) {
	var req report.AbsenteeismRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Absenteeism report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.reportService.Absenteeism(r.Context(), req)
	if err != nil {
		slog.Error("Absenteeism report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Export streams the rendered file directly instead of the JSON envelope.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	var req report.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Export report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	export, err := h.reportService.ExportReport(r.Context(), req)
	if err != nil {
		slog.Error("Export report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Data); err != nil {
		slog.Error("Export report write error", "error", err)
	}
}
