// internal/app/features/notes/routes.go
package notes

import (
	"github.com/academicpro/academicpro/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Notes are strictly personal; everything requires authentication
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.ServeNotesList)
		pr.Post("/", h.HandleCreateNote)

		pr.Get("/{id}", h.ServeNote)
		pr.Put("/{id}", h.HandleUpdateNote)
		pr.Delete("/{id}", h.HandleDeleteNote)
	})

	return r
}
