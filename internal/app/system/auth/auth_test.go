package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/academicpro/academicpro/internal/app/system/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager(testSecret, time.Hour, nil)
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return tm
}

func TestNewTokenManager_ShortSecret(t *testing.T) {
	if _, err := auth.NewTokenManager("short", time.Hour, nil); err == nil {
		t.Error("expected error for short secret")
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	tm := newManager(t)

	token, err := tm.Issue("64f0c2a9e13d5a0001a1b2c3")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "64f0c2a9e13d5a0001a1b2c3" {
		t.Errorf("subject = %q, want %q", userID, "64f0c2a9e13d5a0001a1b2c3")
	}
}

func TestVerify_Garbage(t *testing.T) {
	tm := newManager(t)
	if _, err := tm.Verify("not.a.token"); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	tm := newManager(t)
	other, err := auth.NewTokenManager(strings.Repeat("x", 32), time.Hour, nil)
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}

	token, err := other.Issue("64f0c2a9e13d5a0001a1b2c3")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := tm.Verify(token); err == nil {
		t.Error("expected error for token signed with a different key")
	}
}

func TestVerify_Expired(t *testing.T) {
	tm, err := auth.NewTokenManager(testSecret, time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}

	token, err := tm.Issue("64f0c2a9e13d5a0001a1b2c3")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := tm.Verify(token); err == nil {
		t.Error("expected error for expired token")
	}
}

// fetcherFunc adapts a function to the UserFetcher interface.
type fetcherFunc func(ctx context.Context, idHex string) (*auth.TokenUser, error)

func (f fetcherFunc) FetchByID(ctx context.Context, idHex string) (*auth.TokenUser, error) {
	return f(ctx, idHex)
}

func TestMiddleware_ValidToken(t *testing.T) {
	tm := newManager(t)
	tm.SetUserFetcher(fetcherFunc(func(_ context.Context, idHex string) (*auth.TokenUser, error) {
		return &auth.TokenUser{ID: idHex, Name: "Ada Lovelace", Email: "ada@example.com"}, nil
	}))

	token, err := tm.Issue("64f0c2a9e13d5a0001a1b2c3")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var got *auth.TokenUser
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})

	r := httptest.NewRequest("GET", "/api/notes", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	tm.LoadTokenUser(auth.RequireSignedIn(inner)).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got == nil || got.Name != "Ada Lovelace" {
		t.Errorf("context user = %+v, want fetched user", got)
	}
}

func TestMiddleware_NoToken(t *testing.T) {
	tm := newManager(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a token")
	})

	r := httptest.NewRequest("GET", "/api/notes", nil)
	w := httptest.NewRecorder()
	tm.LoadTokenUser(auth.RequireSignedIn(inner)).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMiddleware_DeletedUser(t *testing.T) {
	tm := newManager(t)
	tm.SetUserFetcher(fetcherFunc(func(_ context.Context, _ string) (*auth.TokenUser, error) {
		return nil, errors.New("not found")
	}))

	token, err := tm.Issue("64f0c2a9e13d5a0001a1b2c3")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for a token whose user is gone")
	})

	r := httptest.NewRequest("GET", "/api/notes", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	tm.LoadTokenUser(auth.RequireSignedIn(inner)).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMiddleware_MissingUser(t *testing.T) {
	tm := newManager(t)
	tm.SetUserFetcher(fetcherFunc(func(_ context.Context, _ string) (*auth.TokenUser, error) {
		return nil, nil
	}))

	token, err := tm.Issue("64f0c2a9e13d5a0001a1b2c3")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := httptest.NewRequest("GET", "/api/notes", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	tm.LoadTokenUser(auth.RequireSignedIn(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not run when the fetcher finds no user")
	}))).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	tm := newManager(t)

	r := httptest.NewRequest("GET", "/api/notes", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	tm.LoadTokenUser(auth.RequireSignedIn(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
