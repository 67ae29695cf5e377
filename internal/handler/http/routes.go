package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// every route requires a verified bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/superheroes", h.listSuperheroes)
		r.Post("/superheroes", h.registerSuperhero)
		r.Patch("/superheroes/{superheroId}", h.updateSuperhero)
		r.Delete("/superheroes/{superheroId}", h.deleteSuperhero)
		r.Post("/superheroes/{superheroId}/image", h.createImageUploadURL)
	})

	return router
}
