// internal/app/store/users/fetcher.go
package userstore

import (
	"context"
	"errors"

	"github.com/academicpro/academicpro/internal/app/system/auth"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher resolves token subjects to live user records so every
// authenticated request reflects the current account state, not the
// state at token-issue time.
type Fetcher struct {
	c *mongo.Collection
}

func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{c: db.Collection("users")}
}

var _ auth.UserFetcher = (*Fetcher)(nil)

// FetchByID loads the minimal fields auth needs for the request
// context. Returns (nil, nil) when the account no longer exists.
func (f *Fetcher) FetchByID(ctx context.Context, idHex string) (*auth.TokenUser, error) {
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var doc struct {
		ID        primitive.ObjectID `bson:"_id"`
		FirstName string             `bson:"first_name"`
		LastName  string             `bson:"last_name"`
		Email     string             `bson:"email"`
	}
	proj := options.FindOne().SetProjection(bson.M{"first_name": 1, "last_name": 1, "email": 1})
	err = f.c.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &auth.TokenUser{
		ID:    doc.ID.Hex(),
		Name:  doc.FirstName + " " + doc.LastName,
		Email: doc.Email,
	}, nil
}
