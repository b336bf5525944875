// internal/app/features/courses/coursesops.go
package courses

import (
	"context"
	"errors"
	"net/http"
	"strings"

	coursestore "github.com/academicpro/academicpro/internal/app/store/courses"
	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/htmlsanitize"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"github.com/academicpro/academicpro/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// courseResponse is a course with the creator expanded for display.
type courseResponse struct {
	models.Course
	AddedByUser *models.UserSummary `json:"addedByUser,omitempty"`
}

// ServeCoursesList handles GET /api/courses. The catalog is shared;
// every signed-in user sees all courses, newest first.
func (h *Handler) ServeCoursesList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := coursestore.New(h.DB)
	list, err := store.List(ctx)
	if err != nil {
		httpjson.ServerError(w, h.Log, "list courses", err)
		return
	}

	// Expand creators in one query for the whole page.
	ids := make([]primitive.ObjectID, 0, len(list))
	for _, c := range list {
		if c.AddedBy != nil {
			ids = append(ids, *c.AddedBy)
		}
	}
	sums, err := userstore.New(h.DB).Summarize(ctx, ids)
	if err != nil {
		httpjson.ServerError(w, h.Log, "expand course creators", err)
		return
	}

	resp := make([]courseResponse, 0, len(list))
	for _, c := range list {
		cr := courseResponse{Course: c}
		if c.AddedBy != nil {
			if s, ok := sums[*c.AddedBy]; ok {
				cr.AddedByUser = &s
			}
		}
		resp = append(resp, cr)
	}

	httpjson.Respond(w, http.StatusOK, resp)
}

type courseRequest struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// HandleCreateCourse handles POST /api/courses.
func (h *Handler) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req courseRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	req.Title = strings.TrimSpace(htmlsanitize.Sanitize(req.Title))
	req.Code = strings.TrimSpace(req.Code)
	req.Description = strings.TrimSpace(htmlsanitize.Sanitize(req.Description))
	if req.Title == "" || req.Code == "" {
		httpjson.BadRequest(w, "Title and code are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := coursestore.New(h.DB)
	created, err := store.Create(ctx, models.Course{
		Title:       req.Title,
		Code:        req.Code,
		Description: req.Description,
		AddedBy:     &uid,
	})
	if err != nil {
		if errors.Is(err, coursestore.ErrDuplicateCode) {
			httpjson.Conflict(w, "A course with this code already exists")
			return
		}
		httpjson.ServerError(w, h.Log, "create course", err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, created)
}

// ServeCourse handles GET /api/courses/{id}.
func (h *Handler) ServeCourse(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "Bad course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := coursestore.New(h.DB)
	course, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Course not found")
			return
		}
		httpjson.ServerError(w, h.Log, "load course", err)
		return
	}

	resp := courseResponse{Course: *course}
	if course.AddedBy != nil {
		sums, err := userstore.New(h.DB).Summarize(ctx, []primitive.ObjectID{*course.AddedBy})
		if err != nil {
			httpjson.ServerError(w, h.Log, "expand course creator", err)
			return
		}
		if s, ok := sums[*course.AddedBy]; ok {
			resp.AddedByUser = &s
		}
	}

	httpjson.Respond(w, http.StatusOK, resp)
}

// loadEditableCourse resolves {id}, loads the course, and enforces that
// the caller is its creator. Writes the error response itself and
// returns nil when the caller should bail out.
func (h *Handler) loadEditableCourse(w http.ResponseWriter, r *http.Request, uid primitive.ObjectID) *models.Course {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "Bad course id")
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := coursestore.New(h.DB)
	course, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Course not found")
			return nil
		}
		httpjson.ServerError(w, h.Log, "load course", err)
		return nil
	}
	if course.AddedBy == nil || *course.AddedBy != uid {
		httpjson.Forbidden(w, "Only the course creator can modify it")
		return nil
	}
	return course
}

// HandleUpdateCourse handles PUT /api/courses/{id}. Creator only.
func (h *Handler) HandleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req courseRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	course := h.loadEditableCourse(w, r, uid)
	if course == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := coursestore.New(h.DB)
	updated, err := store.Update(ctx, course.ID, coursestore.Update{
		Title:       strings.TrimSpace(htmlsanitize.Sanitize(req.Title)),
		Code:        strings.TrimSpace(req.Code),
		Description: strings.TrimSpace(htmlsanitize.Sanitize(req.Description)),
	})
	if err != nil {
		switch {
		case errors.Is(err, coursestore.ErrDuplicateCode):
			httpjson.Conflict(w, "A course with this code already exists")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Course not found")
		default:
			httpjson.ServerError(w, h.Log, "update course", err)
		}
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}

// HandleDeleteCourse handles DELETE /api/courses/{id}. Creator only.
func (h *Handler) HandleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	course := h.loadEditableCourse(w, r, uid)
	if course == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := coursestore.New(h.DB)
	if err := store.Delete(ctx, course.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Course not found")
			return
		}
		httpjson.ServerError(w, h.Log, "delete course", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Course deleted"})
}
