// internal/app/features/users/lookup.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/normalize"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type lookupResponse struct {
	ID        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	Email     string             `json:"email"`
}

// ServeLookup handles GET /api/users/lookup?email=. Group admins use
// it to resolve an invitee's email before adding them as a member.
func (h *Handler) ServeLookup(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(normalize.QueryParam(r.URL.Query().Get("email")))
	if email == "" {
		httpjson.BadRequest(w, "Query parameter email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := userstore.New(h.DB)
	user, err := store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "User not found")
			return
		}
		httpjson.ServerError(w, h.Log, "lookup user", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, lookupResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		Email:     user.Email,
	})
}
