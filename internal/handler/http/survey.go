package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/survey"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type SurveyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SubmitResponse(w http.ResponseWriter, r *http.Request)
}

type SurveyHandlerImpl struct {
	surveyService survey.SurveyService
}

func NewSurveyHandler(surveyService survey.SurveyService) SurveyHandler {
	return &SurveyHandlerImpl{surveyService: surveyService}
}

func (h *SurveyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req survey.CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create survey decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.surveyService.Create(r.Context(), claims.UserID, req)
	if err != nil {
		slog.Error("Create survey service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Survey created", created)
}

func (h *SurveyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.surveyService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *SurveyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveyService.List(r.Context())
	if err != nil {
		slog.Error("List surveys service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, surveys)
}

func (h *SurveyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.surveyService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete survey service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Survey deleted", nil)
}

func (h *SurveyHandlerImpl) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req survey.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.surveyService.SubmitResponse(r.Context(), chi.URLParam(r, "id"), claims.EmployeeID, req)
	if err != nil {
		slog.Error("Submit survey response service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Response recorded", resp)
}
