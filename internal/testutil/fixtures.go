package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/academicpro/academicpro/internal/app/system/status"
	"github.com/academicpro/academicpro/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given name and email.
// The stored password hash is a bcrypt hash of "password123".
func (f *Fixtures) CreateUser(ctx context.Context, firstName, lastName, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		// bcrypt("password123"), precomputed so fixtures stay fast
		PasswordHash: "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateNote creates a test note owned by the given user.
func (f *Fixtures) CreateNote(ctx context.Context, title string, userID primitive.ObjectID) models.Note {
	f.t.Helper()

	now := time.Now().UTC()
	note := models.Note{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   "Test note content",
		Status:    status.Default,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("notes").InsertOne(ctx, note)
	if err != nil {
		f.t.Fatalf("failed to create test note: %v", err)
	}

	return note
}

// CreateCourse creates a test course with the given title and code.
func (f *Fixtures) CreateCourse(ctx context.Context, title, code string) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	course := models.Course{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Code:        code,
		Description: "Test course description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := f.db.Collection("courses").InsertOne(ctx, course)
	if err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}

	return course
}

// CreateGroup creates a test group administered by the given user.
// The admin is also the group's first member.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, adminID primitive.ObjectID) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	group := models.Group{
		ID:            primitive.NewObjectID(),
		Name:          name,
		NameCI:        text.Fold(name),
		Description:   "Test group description",
		AdminID:       adminID,
		MemberIDs:     []primitive.ObjectID{adminID},
		ProjectStatus: status.Default,
		Discussions:   []models.Discussion{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := f.db.Collection("groups").InsertOne(ctx, group)
	if err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}

	return group
}
