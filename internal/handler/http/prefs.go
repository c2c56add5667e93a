package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/response"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/prefs"
)

type PreferencesHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Put(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PreferencesHandlerImpl struct {
	store *prefs.Store
}

func NewPreferencesHandler(store *prefs.Store) PreferencesHandler {
	return &PreferencesHandlerImpl{store: store}
}

func (h *PreferencesHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	p, err := h.store.Get(claims.UserID)
	if err != nil {
		slog.Error("Get preferences error", "error", err)
		response.InternalServerError(w, "Failed to load preferences")
		return
	}

	response.Success(w, p)
}

func (h *PreferencesHandlerImpl) Put(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var p prefs.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The authenticated user owns the record regardless of what the body says.
	p.UserID = claims.UserID
	if err := h.store.Put(p); err != nil {
		slog.Error("Save preferences error", "error", err)
		response.InternalServerError(w, "Failed to save preferences")
		return
	}

	response.SuccessWithMessage(w, "Preferences saved", p)
}

func (h *PreferencesHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.store.Delete(claims.UserID); err != nil {
		slog.Error("Delete preferences error", "error", err)
		response.InternalServerError(w, "Failed to delete preferences")
		return
	}

	response.SuccessWithMessage(w, "Preferences cleared", nil)
}
