// internal/app/features/groups/members.go
package groups

import (
	"context"
	"errors"
	"net/http"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memberRequest struct {
	UserID string `json:"userId"`
}

// resolveMember parses and verifies the target user from the request
// body. Writes the error response itself on failure.
func (h *Handler) resolveMember(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	var req memberRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return primitive.NilObjectID, false
	}
	target, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		httpjson.BadRequest(w, "Bad user id")
		return primitive.NilObjectID, false
	}
	return target, true
}

// HandleAddMember handles POST /api/groups/{id}/members. Admin only.
// The target must be an existing account.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	target, ok := h.resolveMember(w, r)
	if !ok {
		return
	}

	group := h.loadAdministeredGroup(w, r, uid)
	if group == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Ghost members are worse than an extra round trip: verify the
	// account exists before touching the member list.
	if _, err := userstore.New(h.DB).GetByID(ctx, target); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "User not found")
			return
		}
		httpjson.ServerError(w, h.Log, "verify member account", err)
		return
	}

	store := groupstore.New(h.DB)
	if err := store.AddMember(ctx, group.ID, target); err != nil {
		switch {
		case errors.Is(err, groupstore.ErrDuplicateMember):
			httpjson.Conflict(w, "User is already a member of this group")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Group not found")
		default:
			httpjson.ServerError(w, h.Log, "add group member", err)
		}
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Member added"})
}

// HandleRemoveMember handles DELETE /api/groups/{id}/members. Admin
// only. Removing the admin is rejected.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	target, ok := h.resolveMember(w, r)
	if !ok {
		return
	}

	group := h.loadAdministeredGroup(w, r, uid)
	if group == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	if err := store.RemoveMember(ctx, group.ID, target); err != nil {
		switch {
		case errors.Is(err, groupstore.ErrAdminRemoval):
			httpjson.BadRequest(w, "The group admin cannot be removed")
		case errors.Is(err, groupstore.ErrNotMember):
			httpjson.NotFound(w, "User is not a member of this group")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Group not found")
		default:
			httpjson.ServerError(w, h.Log, "remove group member", err)
		}
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Member removed"})
}
