package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/itxsomi270/back-end/internal/handler"
)

// SetupAccountRoutes mounts signup and login. Both are public; no
// session or token is issued on login.
func SetupAccountRoutes(mux *chi.Mux, h *handler.AccountHandler) {
	mux.Post("/signup", h.Signup)
	mux.Post("/login", h.Login)
}
