package pdf

import "github.com/go-chi/chi/v5"

// MountRoutes registers the parameter based endpoints. Stored documents are
// printed through Document, mounted under each document resource.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/generate", h.Generate)
	r.Post("/render", h.Render)
}
