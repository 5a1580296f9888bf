package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// SessionHandler exposes the form state machine over HTTP.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleCreate handles POST /api/v1/sessions requests.
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Create(r.Context())
	if err != nil {
		slog.Error("creating form session", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, service.ToResponse(state))
}

// HandleGet handles GET /api/v1/sessions/{id} requests.
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeState(w, state)
}

// HandleToggle handles POST /api/v1/sessions/{id}/toggle requests.
func (h *SessionHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req model.ToggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	state, err := h.service.Toggle(r.Context(), chi.URLParam(r, "id"), req.Class)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeState(w, state)
}

// HandleSubmit handles POST /api/v1/sessions/{id}/submit requests.
func (h *SessionHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	state, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"), req.PasswordLength)
	if err != nil {
		if !isClientError(err) {
			slog.Error("form submit failed", "error", err)
		}
		writeServiceError(w, err)
		return
	}
	writeState(w, state)
}

// HandleReset handles POST /api/v1/sessions/{id}/reset requests.
func (h *SessionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeState(w, state)
}

// HandleDelete handles DELETE /api/v1/sessions/{id} requests.
func (h *SessionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeState(w http.ResponseWriter, state model.FormState) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, service.ToResponse(state))
}

func isClientError(err error) bool {
	var verr form.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, crypto.ErrEmptyCharacterPool) ||
		errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, service.ErrUnknownClass) ||
		errors.Is(err, service.ErrTooMany) ||
		errors.Is(err, service.ErrSessionNotFound)
}
