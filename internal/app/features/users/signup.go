// internal/app/features/users/signup.go
package users

import (
	"context"
	"fmt"
	"net/http"

	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/authutil"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/inputval"
	"github.com/academicpro/academicpro/internal/app/system/normalize"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"github.com/academicpro/academicpro/internal/domain/models"
	"go.uber.org/zap"
)

type signupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobileNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// accountResponse is a created or updated account plus a fresh token.
type accountResponse struct {
	models.User
	Name  string `json:"name"`
	Token string `json:"token"`
}

// HandleSignup handles POST /api/users/signup.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	req.FirstName = normalize.Name(req.FirstName)
	req.LastName = normalize.Name(req.LastName)
	req.Email = normalize.Email(req.Email)

	if req.FirstName == "" || req.LastName == "" {
		httpjson.BadRequest(w, "First and last name are required")
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		httpjson.BadRequest(w, "A valid email address is required")
		return
	}
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)
	created, err := store.Create(ctx, models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		PasswordHash: hash,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Conflict(w, "An account with this email already exists")
			return
		}
		httpjson.ServerError(w, h.Log, "create user", err)
		return
	}

	token, err := h.Tokens.Issue(created.ID.Hex())
	if err != nil {
		httpjson.ServerError(w, h.Log, "issue token", err)
		return
	}

	h.Log.Info("user signed up", zap.String("user_id", created.ID.Hex()))
	httpjson.Respond(w, http.StatusCreated, accountResponse{
		User:  created,
		Name:  created.DisplayName(),
		Token: token,
	})
}
