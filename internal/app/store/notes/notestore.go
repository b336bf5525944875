// internal/app/store/notes/notestore.go
package notestore

import (
	"context"
	"errors"
	"time"

	"github.com/academicpro/academicpro/internal/app/system/status"
	"github.com/academicpro/academicpro/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notes")}
}

var (
	errMissingTitle   = errors.New("note title is required")
	errMissingContent = errors.New("note content is required")
	errInvalidStatus  = errors.New("invalid note status")
)

// GetByID loads a note by ObjectID. Ownership is not checked here;
// callers enforce it against the requesting user.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Note, error) {
	var n models.Note
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByOwner returns all notes owned by the given user, newest first.
func (s *Store) ListByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notes := []models.Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Create inserts a new note for the given owner. Status defaults to
// "To do" when empty.
func (s *Store) Create(ctx context.Context, n models.Note) (models.Note, error) {
	if n.Title == "" {
		return models.Note{}, errMissingTitle
	}
	if n.Content == "" {
		return models.Note{}, errMissingContent
	}
	if n.Status == "" {
		n.Status = status.Default
	}
	if !status.IsValid(n.Status) {
		return models.Note{}, errInvalidStatus
	}

	n.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

// Update holds the fields a note owner may change. Empty strings mean
// "keep the current value".
type Update struct {
	Title   string
	Content string
	Status  string
}

// Update applies a partial update to a note owned by userID and
// returns the fresh document. Returns mongo.ErrNoDocuments when the
// note does not exist or belongs to someone else, so callers cannot
// distinguish the two from this layer alone.
func (s *Store) Update(ctx context.Context, id, userID primitive.ObjectID, upd Update) (*models.Note, error) {
	if upd.Status != "" && !status.IsValid(upd.Status) {
		return nil, errInvalidStatus
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != "" {
		set["title"] = upd.Title
	}
	if upd.Content != "" {
		set["content"] = upd.Content
	}
	if upd.Status != "" {
		set["status"] = upd.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var n models.Note
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": userID}, bson.M{"$set": set}, opts).Decode(&n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Delete removes a note owned by userID. Returns mongo.ErrNoDocuments
// when nothing matched.
func (s *Store) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
