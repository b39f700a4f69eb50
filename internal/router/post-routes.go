package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/itxsomi270/back-end/internal/handler"
)

// SetupPostRoutes mounts the free-form post endpoints backed by the
// JSON-file record store.
func SetupPostRoutes(mux *chi.Mux, h *handler.PostHandler) {
	mux.Post("/posts", h.CreatePost)
	mux.Get("/posts", h.GetPosts)
	mux.Put("/posts/{id}", h.UpdatePost)
	mux.Delete("/posts/{id}", h.DeletePost)
}
