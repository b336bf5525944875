// internal/app/features/groups/projectstatus.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/status"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
)

type projectStatusRequest struct {
	ProjectStatus string `json:"projectStatus"`
}

// HandleSetProjectStatus handles PUT /api/groups/{id}/assignment/status.
// Admin only: the project status reflects the group's official
// progress, so regular members cannot flip it.
func (h *Handler) HandleSetProjectStatus(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req projectStatusRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if !status.IsValid(req.ProjectStatus) {
		httpjson.BadRequest(w, "Invalid project status")
		return
	}

	group := h.loadAdministeredGroup(w, r, uid)
	if group == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	updated, err := store.SetProjectStatus(ctx, group.ID, req.ProjectStatus)
	if err != nil {
		httpjson.ServerError(w, h.Log, "set project status", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}
