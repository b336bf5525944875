package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/academicpro/academicpro/internal/app/features/users"
	"github.com/academicpro/academicpro/internal/app/system/auth"
	"github.com/academicpro/academicpro/internal/app/system/indexes"
	"github.com/academicpro/academicpro/internal/testutil"
	"go.uber.org/zap"
)

func ensureIndexes(t *testing.T, fixtures *testutil.Fixtures) {
	t.Helper()

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, fixtures.DB()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func newHandler(t *testing.T) (*users.Handler, *testutil.Fixtures) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	tokens, err := auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return users.NewHandler(db, tokens, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestHandleSignup(t *testing.T) {
	h, _ := newHandler(t)

	body := map[string]string{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"email":           "ada@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/signup", body)
	rec := httptest.NewRecorder()

	h.HandleSignup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.Name != "Ada Lovelace" {
		t.Errorf("name: got %q", resp.Name)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.Email != "ada@example.com" {
		t.Errorf("email: got %q", resp.Email)
	}
}

func TestHandleSignup_PasswordMismatch(t *testing.T) {
	h, _ := newHandler(t)

	body := map[string]string{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"email":           "ada@example.com",
		"password":        "secret123",
		"confirmPassword": "different",
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/signup", body)
	rec := httptest.NewRecorder()

	h.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")

	// The unique index is what enforces this in production; without it
	// the store still rejects via the driver's duplicate-key error, so
	// ensure indexes here to exercise the same path.
	ensureIndexes(t, fixtures)

	body := map[string]string{
		"firstName":       "Augusta",
		"lastName":        "King",
		"email":           "ada@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/signup", body)
	rec := httptest.NewRecorder()

	h.HandleSignup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d (body %s)", rec.Code, http.StatusConflict, rec.Body.String())
	}
}

func TestHandleLogin_UniformFailure(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")

	cases := []struct {
		name  string
		email string
	}{
		{"wrong password", "ada@example.com"},
		{"unknown email", "nobody@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := map[string]string{"email": tc.email, "password": "wrongpass"}
			req := testutil.NewJSONRequest(t, http.MethodPost, "/login", body)
			rec := httptest.NewRecorder()

			h.HandleLogin(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			var resp struct {
				Message string `json:"message"`
			}
			testutil.DecodeJSON(t, rec, &resp)
			if resp.Message != "Invalid email or password" {
				t.Errorf("message: got %q", resp.Message)
			}
		})
	}
}

func TestHandleLogin_Success(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Fixture hash is bcrypt("password123")
	fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")

	body := map[string]string{"email": "ADA@example.com", "password": "password123"}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/login", body)
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.Name != "Ada Lovelace" {
		t.Errorf("name: got %q", resp.Name)
	}
}

func TestServeProfile(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/profile", testutil.UserFor(user))
	rec := httptest.NewRecorder()

	h.ServeProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.FirstName != "Ada" || resp.Email != "ada@example.com" {
		t.Errorf("unexpected profile: %+v", resp)
	}
	if got := rec.Body.String(); containsSubstr(got, "password") {
		t.Error("profile response must not contain password fields")
	}
}

func TestHandleUpdateProfile(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")

	body := map[string]string{"firstName": "Augusta", "mobileNumber": "555-0100"}
	req := testutil.NewJSONRequest(t, http.MethodPut, "/profile", body)
	req = testutil.WithUser(req, testutil.UserFor(user))
	rec := httptest.NewRecorder()

	h.HandleUpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		MobileNumber string `json:"mobileNumber"`
		Token        string `json:"token"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.FirstName != "Augusta" {
		t.Errorf("firstName: got %q", resp.FirstName)
	}
	if resp.LastName != "Lovelace" {
		t.Errorf("lastName should be untouched, got %q", resp.LastName)
	}
	if resp.MobileNumber != "555-0100" {
		t.Errorf("mobileNumber: got %q", resp.MobileNumber)
	}
	if resp.Token == "" {
		t.Error("expected a fresh token")
	}
}

func TestServeLookup(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Grace", "Hopper", "grace@example.com")
	caller := fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/lookup?email=grace@example.com", testutil.UserFor(caller))
	rec := httptest.NewRecorder()

	h.ServeLookup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.ID != user.ID.Hex() || resp.FirstName != "Grace" {
		t.Errorf("unexpected lookup result: %+v", resp)
	}

	req = testutil.NewAuthenticatedRequest(http.MethodGet, "/lookup?email=nobody@example.com", testutil.UserFor(caller))
	rec = httptest.NewRecorder()
	h.ServeLookup(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status for unknown email: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func containsSubstr(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
