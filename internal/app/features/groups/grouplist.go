// internal/app/features/groups/grouplist.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/academicpro/academicpro/internal/app/store/groups"
	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"github.com/academicpro/academicpro/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// groupListItem is a group in the list view with its admin expanded.
type groupListItem struct {
	models.Group
	Admin *models.UserSummary `json:"admin,omitempty"`
}

// ServeGroupsList handles GET /api/groups. Only groups the caller
// belongs to are returned, newest first, each with an expanded admin
// summary.
func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	list, err := store.ListForMember(ctx, uid)
	if err != nil {
		httpjson.ServerError(w, h.Log, "list groups", err)
		return
	}

	adminIDs := make([]primitive.ObjectID, 0, len(list))
	for _, g := range list {
		adminIDs = append(adminIDs, g.AdminID)
	}
	sums, err := userstore.New(h.DB).Summarize(ctx, adminIDs)
	if err != nil {
		httpjson.ServerError(w, h.Log, "expand group admins", err)
		return
	}

	resp := make([]groupListItem, 0, len(list))
	for _, g := range list {
		item := groupListItem{Group: g}
		if s, ok := sums[g.AdminID]; ok {
			item.Admin = &s
		}
		resp = append(resp, item)
	}

	httpjson.Respond(w, http.StatusOK, resp)
}
