// internal/app/features/users/handler.go
package users

import (
	"github.com/academicpro/academicpro/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the users feature.
// It holds the Mongo database, the token manager, and the logger so
// that the handlers (signup, login, profile, lookup) share the same
// core dependencies.
type Handler struct {
	DB     *mongo.Database
	Tokens *auth.TokenManager
	Log    *zap.Logger
}

// NewHandler constructs a new users Handler. It is typically called
// from the bootstrap BuildHandler function, where the application's
// DB, token manager, and logger are already initialized.
func NewHandler(db *mongo.Database, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Tokens: tokens,
		Log:    logger,
	}
}
