package emulator

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(store *Store) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(JSONContentType)

	h := NewHandler(store)

	r.Route("/compute/v1/projects/{project}/regions/{region}/routers", func(r chi.Router) {
		r.Get("/", h.GetRouters)
		r.Get("/{router}", h.GetRouter)
		r.Patch("/{router}", h.PatchRouter)
	})

	// Health check endpoint at root
	r.Get("/health", h.CheckHealth)

	return r
}
