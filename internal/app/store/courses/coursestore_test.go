package coursestore_test

import (
	"errors"
	"testing"

	coursestore "github.com/academicpro/academicpro/internal/app/store/courses"
	"github.com/academicpro/academicpro/internal/app/system/indexes"
	"github.com/academicpro/academicpro/internal/domain/models"
	"github.com/academicpro/academicpro/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	addedBy := primitive.NewObjectID()
	course := models.Course{
		Title:       "Operating Systems",
		Code:        "CS3500",
		Description: "Processes, memory, filesystems",
		AddedBy:     &addedBy,
	}

	created, err := store.Create(ctx, course)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if created.AddedBy == nil || *created.AddedBy != addedBy {
		t.Error("expected AddedBy to be preserved")
	}
}

func TestStore_Create_DuplicateCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	course := models.Course{Title: "Operating Systems", Code: "CS3500"}
	if _, err := store.Create(ctx, course); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	course.Title = "Another OS Course"
	_, err := store.Create(ctx, course)
	if !errors.Is(err, coursestore.ErrDuplicateCode) {
		t.Errorf("expected ErrDuplicateCode, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, "Algorithms", "CS4000")
	fixtures.CreateCourse(ctx, "Databases", "CS4100")

	courses, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Algorithms", "CS4000")

	updated, err := store.Update(ctx, course.ID, coursestore.Update{Description: "Greedy, DP, graphs"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Description != "Greedy, DP, graphs" {
		t.Errorf("Description: got %q", updated.Description)
	}
	if updated.Code != "CS4000" {
		t.Errorf("Code should be untouched, got %q", updated.Code)
	}

	_, err = store.Update(ctx, primitive.NewObjectID(), coursestore.Update{Title: "Ghost"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments for missing course, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Algorithms", "CS4000")

	if err := store.Delete(ctx, course.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, course.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments on second delete, got %v", err)
	}
}
