// internal/app/features/groups/groupedit.go
package groups

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/htmlsanitize"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
)

// editGroupRequest carries the fields the admin may change on the
// group itself. Pointer fields distinguish "absent" (keep) from an
// explicit value; an empty deadline string clears the deadline.
type editGroupRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	AssignmentTitle *string `json:"assignmentTitle"`
	Deadline        *string `json:"deadline"` // RFC 3339, "" clears
}

// HandleEditGroup handles PUT /api/groups/{id}. Admin only. The admin
// assignment itself is immutable; there is deliberately no way to
// change admin_id here or anywhere else.
func (h *Handler) HandleEditGroup(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req editGroupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	var deadline *time.Time
	clearDeadline := false
	if req.Deadline != nil {
		if *req.Deadline == "" {
			clearDeadline = true
		} else {
			parsed, err := time.Parse(time.RFC3339, *req.Deadline)
			if err != nil {
				httpjson.BadRequest(w, "Deadline must be an RFC 3339 timestamp")
				return
			}
			deadline = &parsed
		}
	}

	group := h.loadAdministeredGroup(w, r, uid)
	if group == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	result := *group

	if req.Name != nil || req.Description != nil {
		name := ""
		if req.Name != nil {
			name = strings.TrimSpace(htmlsanitize.Sanitize(*req.Name))
			if name == "" {
				httpjson.BadRequest(w, "Group name cannot be empty")
				return
			}
		}
		desc := group.Description
		if req.Description != nil {
			desc = strings.TrimSpace(htmlsanitize.Sanitize(*req.Description))
		}

		updated, err := store.UpdateDetails(ctx, group.ID, name, desc)
		if err != nil {
			if errors.Is(err, groupstore.ErrDuplicateGroupName) {
				httpjson.Conflict(w, "A group with this name already exists")
				return
			}
			httpjson.ServerError(w, h.Log, "update group details", err)
			return
		}
		result = updated
	}

	if req.AssignmentTitle != nil || req.Deadline != nil {
		title := result.AssignmentTitle
		if req.AssignmentTitle != nil {
			title = strings.TrimSpace(htmlsanitize.Sanitize(*req.AssignmentTitle))
		}
		next := result.Deadline
		if deadline != nil {
			next = deadline
		}
		if clearDeadline {
			next = nil
		}

		updated, err := store.SetAssignment(ctx, group.ID, title, next)
		if err != nil {
			httpjson.ServerError(w, h.Log, "update group assignment", err)
			return
		}
		result = updated
	}

	httpjson.Respond(w, http.StatusOK, result)
}
