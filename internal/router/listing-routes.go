package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/itxsomi270/back-end/internal/handler"
)

// SetupListingRoutes mounts the property endpoints. Paths match the
// legacy backend so existing clients keep working unchanged.
func SetupListingRoutes(mux *chi.Mux, h *handler.ListingHandler) {
	mux.Post("/rent-your-space", h.RentYourSpace)
	mux.Get("/get-properties", h.GetProperties)
	mux.Get("/get-property/{id}", h.GetProperty)
}
