// internal/app/features/users/login.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authutil"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// invalidCredentials is the uniform login failure message. Whether the
// email exists or the password is wrong, callers see the same thing.
const invalidCredentials = "Invalid email or password"

// HandleLogin handles POST /api/users/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.BadRequest(w, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)
	user, err := store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Unauthorized(w, invalidCredentials)
			return
		}
		httpjson.ServerError(w, h.Log, "load user for login", err)
		return
	}

	if !authutil.CheckPassword(user.PasswordHash, req.Password) {
		httpjson.Unauthorized(w, invalidCredentials)
		return
	}

	token, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		httpjson.ServerError(w, h.Log, "issue token", err)
		return
	}

	h.Log.Info("user logged in", zap.String("user_id", user.ID.Hex()))
	httpjson.Respond(w, http.StatusOK, accountResponse{
		User:  *user,
		Name:  user.DisplayName(),
		Token: token,
	})
}
