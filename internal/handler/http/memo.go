package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/memo"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type MemoHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MemoHandlerImpl struct {
	memoService memo.MemoService
}

func NewMemoHandler(memoService memo.MemoService) MemoHandler {
	return &MemoHandlerImpl{memoService: memoService}
}

func (h *MemoHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req memo.CreateMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create memo decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.memoService.Create(r.Context(), claims.UserID, req)
	if err != nil {
		slog.Error("Create memo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Memo created", created)
}

func (h *MemoHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.memoService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *MemoHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := memo.MemoFilter{
		Department: q.Get("department"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	memos, total, err := h.memoService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List memos service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, memos, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *MemoHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req memo.UpdateMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.memoService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update memo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memo updated", updated)
}

func (h *MemoHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	acked, err := h.memoService.Acknowledge(r.Context(), chi.URLParam(r, "id"), claims.UserID)
	if err != nil {
		slog.Error("Acknowledge memo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memo acknowledged", acked)
}

func (h *MemoHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.memoService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete memo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memo deleted", nil)
}
