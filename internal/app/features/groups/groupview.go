// internal/app/features/groups/groupview.go
package groups

import (
	"context"
	"net/http"

	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"github.com/academicpro/academicpro/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// discussionView is a discussion entry with its author expanded.
type discussionView struct {
	models.Discussion
	Author *models.UserSummary `json:"author,omitempty"`
}

// groupView is the full group detail response: admin, members, and
// discussion authors expanded into typed summaries.
type groupView struct {
	models.Group
	Admin       *models.UserSummary  `json:"admin,omitempty"`
	Members     []models.UserSummary `json:"members"`
	Discussions []discussionView     `json:"discussions"`
}

// ServeGroupView handles GET /api/groups/{id}. Members only.
func (h *Handler) ServeGroupView(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	group := h.loadMemberGroup(w, r, uid)
	if group == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// One lookup covers admin, members, and every discussion author.
	ids := make([]primitive.ObjectID, 0, len(group.MemberIDs)+len(group.Discussions)+1)
	ids = append(ids, group.AdminID)
	ids = append(ids, group.MemberIDs...)
	for _, d := range group.Discussions {
		ids = append(ids, d.UserID)
	}

	sums, err := userstore.New(h.DB).Summarize(ctx, ids)
	if err != nil {
		httpjson.ServerError(w, h.Log, "expand group users", err)
		return
	}

	view := groupView{
		Group:       *group,
		Members:     make([]models.UserSummary, 0, len(group.MemberIDs)),
		Discussions: make([]discussionView, 0, len(group.Discussions)),
	}
	if s, ok := sums[group.AdminID]; ok {
		view.Admin = &s
	}
	for _, id := range group.MemberIDs {
		if s, ok := sums[id]; ok {
			view.Members = append(view.Members, s)
		}
	}
	for _, d := range group.Discussions {
		dv := discussionView{Discussion: d}
		if s, ok := sums[d.UserID]; ok {
			dv.Author = &s
		}
		view.Discussions = append(view.Discussions, dv)
	}

	httpjson.Respond(w, http.StatusOK, view)
}
