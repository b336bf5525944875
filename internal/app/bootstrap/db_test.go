package bootstrap

import (
	"testing"

	"github.com/academicpro/academicpro/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestEnsureSchema_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	// Unique email index must reject a second user with the same email
	users := db.Collection("users")
	doc := bson.M{
		"first_name":    "Ada",
		"last_name":     "Lovelace",
		"email":         "ada@example.com",
		"password_hash": "$2a$12$notarealhashbutlongenough0000000000000000000000000000",
	}
	if _, err := users.InsertOne(ctx, doc); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	delete(doc, "_id")
	if _, err := users.InsertOne(ctx, doc); err == nil {
		t.Error("expected duplicate email insert to fail")
	}

	// Idempotent on a second run
	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
		t.Errorf("second EnsureSchema failed: %v", err)
	}
}
