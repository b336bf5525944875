// internal/app/features/groups/meta.go
package groups

import (
	"context"
	"errors"
	"net/http"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"github.com/academicpro/academicpro/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// loadGroup resolves the {id} URL parameter and loads the group.
// Writes the error response itself and returns nil when the caller
// should bail out.
func (h *Handler) loadGroup(w http.ResponseWriter, r *http.Request) *models.Group {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "Bad group id")
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := groupstore.New(h.DB)
	group, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Group not found")
			return nil
		}
		httpjson.ServerError(w, h.Log, "load group", err)
		return nil
	}
	return &group
}

// loadAdministeredGroup is loadGroup plus an admin check. Existing
// groups the caller does not administer yield 403.
func (h *Handler) loadAdministeredGroup(w http.ResponseWriter, r *http.Request, uid primitive.ObjectID) *models.Group {
	group := h.loadGroup(w, r)
	if group == nil {
		return nil
	}
	if group.AdminID != uid {
		httpjson.Forbidden(w, "Only the group admin can do that")
		return nil
	}
	return group
}

// loadMemberGroup is loadGroup plus a membership check.
func (h *Handler) loadMemberGroup(w http.ResponseWriter, r *http.Request, uid primitive.ObjectID) *models.Group {
	group := h.loadGroup(w, r)
	if group == nil {
		return nil
	}
	if !group.HasMember(uid) {
		httpjson.Forbidden(w, "You are not a member of this group")
		return nil
	}
	return group
}
