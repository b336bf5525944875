// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"time"

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
	return &Store{c: db.Collection("courses")}
}

var (
	// ErrDuplicateCode is returned when a course with the same code
	// already exists.
	ErrDuplicateCode = errors.New("a course with this code already exists")

	errMissingTitle = errors.New("course title is required")
	errMissingCode  = errors.New("course code is required")
)

// GetByID loads a course by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every course in the catalog, newest first.
func (s *Store) List(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []models.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Create inserts a new course. The unique index on code turns races
// into ErrDuplicateCode rather than double inserts.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	if c.Title == "" {
		return models.Course{}, errMissingTitle
	}
	if c.Code == "" {
		return models.Course{}, errMissingCode
	}

	c.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Course{}, ErrDuplicateCode
		}
		return models.Course{}, err
	}
	return c, nil
}

// Update holds the fields a course editor may change. Empty strings
// mean "keep the current value".
type Update struct {
	Title       string
	Code        string
	Description string
}

// Update applies a partial update and returns the fresh document.
// Returns ErrDuplicateCode when the new code collides with another
// course, mongo.ErrNoDocuments when the course does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Course, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != "" {
		set["title"] = upd.Title
	}
	if upd.Code != "" {
		set["code"] = upd.Code
	}
	if upd.Description != "" {
		set["description"] = upd.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Course
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a course. Returns mongo.ErrNoDocuments when nothing
// matched.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
