package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/category"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
)

type CategoryHandler interface {
	CreateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
	CreateAssignee(w http.ResponseWriter, r *http.Request)
	ListAssignees(w http.ResponseWriter, r *http.Request)
	SetAssigneeActive(w http.ResponseWriter, r *http.Request)
	DeleteAssignee(w http.ResponseWriter, r *http.Request)
}

type CategoryHandlerImpl struct {
	categoryService category.CategoryService
}

func NewCategoryHandler(categoryService category.CategoryService) CategoryHandler {
	return &CategoryHandlerImpl{categoryService: categoryService}
}

func (h *CategoryHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req category.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.categoryService.CreateCategory(r.Context(), req)
	if err != nil {
		slog.Error("Create category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created", created)
}

func (h *CategoryHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		slog.Error("List categories service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, categories)
}

func (h *CategoryHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category deleted", nil)
}

func (h *CategoryHandlerImpl) CreateAssignee(w http.ResponseWriter, r *http.Request) {
	var req category.CreateAssigneeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.categoryService.CreateAssignee(r.Context(), req)
	if err != nil {
		slog.Error("Create assignee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignee created", created)
}

func (h *CategoryHandlerImpl) ListAssignees(w http.ResponseWriter, r *http.Request) {
	assignees, err := h.categoryService.ListAssignees(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		slog.Error("List assignees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignees)
}

func (h *CategoryHandlerImpl) SetAssigneeActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.categoryService.SetAssigneeActive(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		slog.Error("Set assignee active service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignee updated", updated)
}

func (h *CategoryHandlerImpl) DeleteAssignee(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.DeleteAssignee(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete assignee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignee deleted", nil)
}
