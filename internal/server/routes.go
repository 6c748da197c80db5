package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// Blob downloads stay open: PublicURL consumers fetch without
	// credentials.
	router.Get("/api/v2/files/*", h.getFile)

	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Get("/api/v2/scenes/{roomID}", h.getScene)
		r.Put("/api/v2/scenes/{roomID}", h.putScene)
		r.Put("/api/v2/files/*", h.putFile)
	})

	return router
}
