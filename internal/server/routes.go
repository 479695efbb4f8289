package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the status endpoint's router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/api/sync/status", h.status)
		r.Post("/api/sync/run", h.run)
	})

	return router
}
