// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	coursesfeature "github.com/academicpro/academicpro/internal/app/features/courses"
	groupsfeature "github.com/academicpro/academicpro/internal/app/features/groups"
	healthfeature "github.com/academicpro/academicpro/internal/app/features/health"
	notesfeature "github.com/academicpro/academicpro/internal/app/features/notes"
	usersfeature "github.com/academicpro/academicpro/internal/app/features/users"
	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/auth"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// AcademicPro creates the token manager, applies the token-loading
// middleware globally, and mounts the JSON feature routers under /api:
// users, notes, courses, and groups.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(appCfg.TokenSecret, appCfg.TokenTTL, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	// Fetch fresh user data on each request so profile updates and
	// deleted accounts take effect immediately, not at token expiry.
	tokens.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	r := chi.NewRouter()

	// Global auth middleware: loads the token user into context when a
	// valid bearer token is present. Per-route guards enforce sign-in.
	r.Use(tokens.LoadTokenUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Get("/health", healthHandler.Serve)

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Route("/api", func(api chi.Router) {
		// Mutating endpoints all take JSON bodies
		api.Use(middleware.AllowContentType("application/json", ""))

		usersHandler := usersfeature.NewHandler(deps.MongoDatabase, tokens, logger)
		api.Mount("/users", usersfeature.Routes(usersHandler))

		notesHandler := notesfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/notes", notesfeature.Routes(notesHandler))

		coursesHandler := coursesfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/courses", coursesfeature.Routes(coursesHandler))

		groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/groups", groupsfeature.Routes(groupsHandler))
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpjson.NotFound(w, "Route not found")
	})

	return r, nil
}
