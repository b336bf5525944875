// internal/app/features/groups/routes.go
package groups

import (
	"github.com/academicpro/academicpro/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Everything under /groups requires authentication
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		// LIST / CREATE
		pr.Get("/", h.ServeGroupsList)
		pr.Post("/", h.HandleCreateGroup)

		// VIEW / EDIT / DELETE
		pr.Get("/{id}", h.ServeGroupView)
		pr.Put("/{id}", h.HandleEditGroup)
		pr.Delete("/{id}", h.HandleDeleteGroup)

		// MEMBERS (admin only)
		pr.Post("/{id}/members", h.HandleAddMember)
		pr.Delete("/{id}/members", h.HandleRemoveMember)

		// DISCUSSION (members)
		pr.Post("/{id}/discuss", h.HandlePostDiscussion)

		// ASSIGNMENT STATUS (admin only)
		pr.Put("/{id}/assignment/status", h.HandleSetProjectStatus)
	})

	return r
}
