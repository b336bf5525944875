// internal/app/features/courses/routes.go
package courses

import (
	"github.com/academicpro/academicpro/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.ServeCoursesList)
		pr.Post("/", h.HandleCreateCourse)

		pr.Get("/{id}", h.ServeCourse)
		pr.Put("/{id}", h.HandleUpdateCourse)
		pr.Delete("/{id}", h.HandleDeleteCourse)
	})

	return r
}
