package admin

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		// Tighter limit than the general API: replacement is rare and a
		// convenient brute-force target for the shared secret.
		r.Use(httprate.Limit(5, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		r.Post("/upload-db", h.UploadStore)
	})
}
