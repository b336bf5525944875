package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/academicpro/academicpro/internal/app/store/users"
	"github.com/academicpro/academicpro/internal/app/system/indexes"
	"github.com/academicpro/academicpro/internal/domain/models"
	"github.com/academicpro/academicpro/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := models.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "Ada@Example.COM",
		PasswordHash: "$2a$12$notarealhashbutlongenough0000000000000000000000000000",
	}

	created, err := store.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	user := models.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$notarealhashbutlongenough0000000000000000000000000000",
	}
	if _, err := store.Create(ctx, user); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	user.FirstName = "Augusta"
	_, err := store.Create(ctx, user)
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fixtures.CreateUser(ctx, "Grace", "Hopper", "grace@example.com")

	found, err := store.GetByEmail(ctx, "  GRACE@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID: got %v, want %v", found.ID, created.ID)
	}

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments for missing user, got %v", err)
	}
}

func TestStore_UpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fixtures.CreateUser(ctx, "Grace", "Hopper", "grace@example.com")

	mobile := "555-0100"
	updated, err := store.UpdateProfile(ctx, created.ID, userstore.ProfileUpdate{
		FirstName:    "Amazing",
		MobileNumber: &mobile,
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if updated.FirstName != "Amazing" {
		t.Errorf("FirstName: got %q, want %q", updated.FirstName, "Amazing")
	}
	if updated.LastName != "Hopper" {
		t.Errorf("LastName should be untouched, got %q", updated.LastName)
	}
	if updated.MobileNumber != "555-0100" {
		t.Errorf("MobileNumber: got %q, want %q", updated.MobileNumber, "555-0100")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestStore_Summarize(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u1 := fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")
	u2 := fixtures.CreateUser(ctx, "Grace", "Hopper", "grace@example.com")
	missing := primitive.NewObjectID()

	sums, err := store.Summarize(ctx, []primitive.ObjectID{u1.ID, u2.ID, missing})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if len(sums) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(sums))
	}
	if got := sums[u1.ID].FirstName; got != "Ada" {
		t.Errorf("summary FirstName: got %q, want %q", got, "Ada")
	}
	if _, ok := sums[missing]; ok {
		t.Error("missing user should not appear in summaries")
	}
}

func TestFetcher_FetchByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fetcher := userstore.NewFetcher(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fixtures.CreateUser(ctx, "Ada", "Lovelace", "ada@example.com")

	tu, err := fetcher.FetchByID(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("FetchByID failed: %v", err)
	}
	if tu == nil {
		t.Fatal("expected a token user")
	}
	if tu.Name != "Ada Lovelace" {
		t.Errorf("Name: got %q, want %q", tu.Name, "Ada Lovelace")
	}

	tu, err = fetcher.FetchByID(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("FetchByID for missing user failed: %v", err)
	}
	if tu != nil {
		t.Error("expected nil for missing user")
	}

	tu, err = fetcher.FetchByID(ctx, "not-a-hex-id")
	if err != nil || tu != nil {
		t.Errorf("malformed ID should yield (nil, nil), got (%v, %v)", tu, err)
	}
}
