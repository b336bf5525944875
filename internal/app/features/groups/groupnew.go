// internal/app/features/groups/groupnew.go
package groups

import (
	"context"
	"errors"
	"net/http"
	"strings"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/htmlsanitize"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"github.com/academicpro/academicpro/internal/domain/models"
)

type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleCreateGroup handles POST /api/groups. The caller becomes the
// group's admin and its first member.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req createGroupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(htmlsanitize.Sanitize(req.Name))
	req.Description = strings.TrimSpace(htmlsanitize.Sanitize(req.Description))
	if req.Name == "" {
		httpjson.BadRequest(w, "Group name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	created, err := store.Create(ctx, models.Group{
		Name:        req.Name,
		Description: req.Description,
		AdminID:     uid,
	})
	if err != nil {
		if errors.Is(err, groupstore.ErrDuplicateGroupName) {
			httpjson.Conflict(w, "A group with this name already exists")
			return
		}
		httpjson.ServerError(w, h.Log, "create group", err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, created)
}
