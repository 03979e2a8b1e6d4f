package providers

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/providers", h.List)
	r.Get("/providers/{id}", h.Get)
	r.Get("/filters", h.Filters)
}
