package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the API routes. limit wraps the endpoints that consume entropy.
func NewRouter(gen *GeneratorHandler, sessions *SessionHandler, limit func(http.Handler) http.Handler) chi.Router {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.With(limit).Post("/generate", gen.HandleGenerate)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessions.HandleCreate)
			r.Get("/{id}", sessions.HandleGet)
			r.Delete("/{id}", sessions.HandleDelete)
			r.Post("/{id}/toggle", sessions.HandleToggle)
			r.With(limit).Post("/{id}/submit", sessions.HandleSubmit)
			r.Post("/{id}/reset", sessions.HandleReset)
		})
	})

	return r
}
