// internal/app/features/groups/groupdelete.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
)

// HandleDeleteGroup handles DELETE /api/groups/{id}. Admin only.
// Discussions live inside the group document, so deleting the group
// removes them with it.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	group := h.loadAdministeredGroup(w, r, uid)
	if group == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	deleted, err := store.Delete(ctx, group.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "delete group", err)
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "Group not found")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Group deleted"})
}
