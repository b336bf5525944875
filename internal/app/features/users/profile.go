// internal/app/features/users/profile.go
package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authutil"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/inputval"
	"github.com/academicpro/academicpro/internal/app/system/normalize"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeProfile handles GET /api/users/profile.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := userstore.New(h.DB)
	user, err := store.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "User not found")
			return
		}
		httpjson.ServerError(w, h.Log, "load profile", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	MobileNumber    *string `json:"mobileNumber"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
}

// HandleUpdateProfile handles PUT /api/users/profile. Only the fields
// present in the body change; a successful update returns the fresh
// profile with a newly minted token.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req updateProfileRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	if e := normalize.Email(req.Email); e != "" && !inputval.IsValidEmail(e) {
		httpjson.BadRequest(w, "A valid email address is required")
		return
	}

	upd := userstore.ProfileUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	}

	if req.Password != "" {
		if !inputval.IsValidPassword(req.Password) {
			httpjson.BadRequest(w, fmt.Sprintf("Password must be at least %d characters", inputval.MinPasswordLength))
			return
		}
		if req.Password != req.ConfirmPassword {
			httpjson.BadRequest(w, "Passwords do not match")
			return
		}
		hash, err := authutil.HashPassword(req.Password)
		if err != nil {
			httpjson.ServerError(w, h.Log, "hash password", err)
			return
		}
		upd.PasswordHash = hash
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)
	user, err := store.UpdateProfile(ctx, uid, upd)
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrDuplicateEmail):
			httpjson.Conflict(w, "An account with this email already exists")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "User not found")
		default:
			httpjson.ServerError(w, h.Log, "update profile", err)
		}
		return
	}

	token, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		httpjson.ServerError(w, h.Log, "issue token", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, accountResponse{
		User:  *user,
		Name:  user.DisplayName(),
		Token: token,
	})
}
