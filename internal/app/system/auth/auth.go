// internal/app/system/auth/auth.go

// Package auth issues and verifies the bearer tokens that establish
// caller identity, and injects the current user into request context.
//
// There is no cookie session and no global mutable auth state: a token
// arrives in the Authorization header on every request, is verified
// against the signing key, and the referenced user is re-fetched from
// the store so profile changes take effect immediately.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenUser is what gets injected into r.Context() for a verified
// caller.
type TokenUser struct {
	ID    string // user ObjectID hex
	Name  string // "First Last"
	Email string
}

// UserFetcher loads fresh user data for a verified token subject.
// Returning an error (including "not found" for a deleted account)
// rejects the token.
type UserFetcher interface {
	FetchByID(ctx context.Context, idHex string) (*TokenUser, error)
}

// ErrInvalidToken is returned by Verify for any token that fails
// signature, expiry, or claim checks.
var ErrInvalidToken = errors.New("invalid or expired token")

const minSecretLen = 32

// TokenManager mints and validates bearer tokens (HS256 JWTs carrying
// the user ID as subject).
type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	log     *zap.Logger
	fetcher UserFetcher
}

// NewTokenManager builds a TokenManager. The signing secret must be at
// least 32 bytes; short secrets are a config error, not something to
// limp along with.
func NewTokenManager(secret string, ttl time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if len(secret) < minSecretLen {
		return nil, errors.New("token signing secret must be at least 32 bytes")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, log: logger}, nil
}

// SetUserFetcher wires the store lookup used to refresh user data on
// each request.
func (tm *TokenManager) SetUserFetcher(f UserFetcher) {
	tm.fetcher = f
}

// Issue mints a signed bearer token for the given user ID.
func (tm *TokenManager) Issue(userIDHex string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userIDHex,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Verify checks signature and expiry and returns the token's subject
// (the user ID hex).
func (tm *TokenManager) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the verified user & "found?" flag.
func CurrentUser(r *http.Request) (*TokenUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*TokenUser)
	return u, ok
}

func withUser(r *http.Request, u *TokenUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user directly into the request context,
// bypassing token verification. For handler tests only.
func WithTestUser(r *http.Request, u *TokenUser) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// LoadTokenUser injects the user into context when the request carries
// a valid bearer token. Requests without a token (or with a bad one)
// continue anonymously; RequireSignedIn decides whether that matters.
func (tm *TokenManager) LoadTokenUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := tm.Verify(token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if tm.fetcher == nil {
			// No fetcher wired: trust the token's subject alone.
			next.ServeHTTP(w, withUser(r, &TokenUser{ID: userID}))
			return
		}

		u, err := tm.fetcher.FetchByID(r.Context(), userID)
		if err != nil {
			if tm.log != nil {
				tm.log.Warn("token user fetch failed", zap.String("user_id", userID), zap.Error(err))
			}
			next.ServeHTTP(w, r)
			return
		}
		if u == nil {
			// Token subject no longer exists; continue anonymously.
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireSignedIn ensures there is a verified user in context (set by
// LoadTokenUser). API callers with no valid token get a plain 401 with
// the uniform envelope.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Not authorized, no valid token"}`))
	})
}
