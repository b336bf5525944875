// internal/app/features/groups/discuss.go
package groups

import (
	"context"
	"errors"
	"net/http"
	"strings"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/htmlsanitize"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type discussRequest struct {
	Text string `json:"text"`
}

// HandlePostDiscussion handles POST /api/groups/{id}/discuss. Members
// only. The entry is sanitized, appended to the group's log, and
// returned alone with its author expanded.
func (h *Handler) HandlePostDiscussion(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req discussRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	text := strings.TrimSpace(htmlsanitize.Sanitize(req.Text))
	if text == "" {
		httpjson.BadRequest(w, "Discussion text is required")
		return
	}

	group := h.loadMemberGroup(w, r, uid)
	if group == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	entry, err := store.AppendDiscussion(ctx, group.ID, uid, text)
	if err != nil {
		switch {
		case errors.Is(err, groupstore.ErrNotMember):
			httpjson.Forbidden(w, "You are not a member of this group")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Group not found")
		default:
			httpjson.ServerError(w, h.Log, "append discussion", err)
		}
		return
	}

	view := discussionView{Discussion: entry}
	sums, err := userstore.New(h.DB).Summarize(ctx, []primitive.ObjectID{uid})
	if err == nil {
		if s, ok := sums[uid]; ok {
			view.Author = &s
		}
	}

	httpjson.Respond(w, http.StatusCreated, view)
}
