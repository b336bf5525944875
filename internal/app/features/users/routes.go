// internal/app/features/users/routes.go
package users

import (
	"github.com/academicpro/academicpro/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Open endpoints
	r.Post("/signup", h.HandleSignup)
	r.Post("/login", h.HandleLogin)

	// Everything else requires a valid bearer token
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/profile", h.ServeProfile)
		pr.Put("/profile", h.HandleUpdateProfile)
		pr.Get("/lookup", h.ServeLookup)
	})

	return r
}
