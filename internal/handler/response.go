package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeServiceError maps domain errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr form.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, crypto.ErrEmptyCharacterPool),
		errors.Is(err, crypto.ErrInvalidLength),
		errors.Is(err, service.ErrUnknownClass),
		errors.Is(err, service.ErrTooMany):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
