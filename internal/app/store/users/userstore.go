// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/academicpro/academicpro/internal/app/system/normalize"
	"github.com/academicpro/academicpro/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create or update a
	// user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	errMissingName  = errors.New("first and last name are required")
	errMissingEmail = errors.New("email is required")
	errMissingHash  = errors.New("password hash is required")
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Summarize returns the embedded-display projections for a set of user
// IDs, keyed by ID. Missing users are simply absent from the map.
func (s *Store) Summarize(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	out := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	proj := options.Find().SetProjection(bson.M{"first_name": 1, "last_name": 1, "email": 1})
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, proj)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var sum models.UserSummary
		if err := cur.Decode(&sum); err != nil {
			return nil, err
		}
		out[sum.ID] = sum
	}
	return out, cur.Err()
}

// Create inserts a new user after normalizing fields. PasswordHash must
// already be a bcrypt hash; this store never sees raw passwords.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FirstName = normalize.Name(u.FirstName)
	u.LastName = normalize.Name(u.LastName)
	u.Email = normalize.Email(u.Email)

	if u.FirstName == "" || u.LastName == "" {
		return models.User{}, errMissingName
	}
	if u.Email == "" {
		return models.User{}, errMissingEmail
	}
	if u.PasswordHash == "" {
		return models.User{}, errMissingHash
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// ProfileUpdate holds the fields a user may change on their own record.
// Empty strings mean "keep the current value"; accounts always have a
// name, email, and credential, so clearing them is not a thing.
type ProfileUpdate struct {
	FirstName    string
	LastName     string
	Email        string
	MobileNumber *string // nil keeps, pointer sets (may clear)
	PasswordHash string
}

// UpdateProfile applies a partial profile update and returns the fresh
// document. Returns ErrDuplicateEmail if the new email collides with
// another account.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if v := normalize.Name(upd.FirstName); v != "" {
		set["first_name"] = v
	}
	if v := normalize.Name(upd.LastName); v != "" {
		set["last_name"] = v
	}
	if v := normalize.Email(upd.Email); v != "" {
		set["email"] = v
	}
	if upd.MobileNumber != nil {
		set["mobile_number"] = normalize.QueryParam(*upd.MobileNumber)
	}
	if upd.PasswordHash != "" {
		set["password_hash"] = upd.PasswordHash
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}
