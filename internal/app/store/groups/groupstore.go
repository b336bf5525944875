// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/academicpro/academicpro/internal/app/system/status"
	"github.com/academicpro/academicpro/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	// ErrDuplicateGroupName is returned when a group with the same
	// case-folded name already exists.
	ErrDuplicateGroupName = errors.New("a group with this name already exists")

	// ErrDuplicateMember is returned when adding a user who is already
	// in the group.
	ErrDuplicateMember = errors.New("user is already a member of this group")

	// ErrAdminRemoval is returned when attempting to remove the group
	// admin from the member list.
	ErrAdminRemoval = errors.New("the group admin cannot be removed")

	// ErrNotMember is returned when a discussion author is not in the
	// group's member list.
	ErrNotMember = errors.New("user is not a member of this group")

	errMissingName   = errors.New("group name is required")
	errInvalidStatus = errors.New("invalid project status")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// ListForMember returns all groups the user belongs to, newest first.
// The admin is always in member_ids, so this covers administered
// groups too.
func (s *Store) ListForMember(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"member_ids": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Create inserts a new group. The creator becomes the immutable admin
// and the first member. Initial project status is "To do".
func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	if strings.TrimSpace(g.Name) == "" {
		return models.Group{}, errMissingName
	}
	if g.AdminID == primitive.NilObjectID {
		return models.Group{}, errors.New("group admin is required")
	}

	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	g.NameCI = text.Fold(g.Name)
	g.MemberIDs = []primitive.ObjectID{g.AdminID}
	if g.ProjectStatus == "" {
		g.ProjectStatus = status.Default
	}
	if !status.IsValid(g.ProjectStatus) {
		return models.Group{}, errInvalidStatus
	}
	if g.Discussions == nil {
		g.Discussions = []models.Discussion{}
	}
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, g)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, ErrDuplicateGroupName
		}
		return models.Group{}, err
	}
	return g, nil
}

// UpdateDetails changes a group's name and description. Empty name
// keeps the current one; description is always written so it can be
// cleared.
func (s *Store) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, desc string) (models.Group, error) {
	set := bson.M{
		"updated_at":  time.Now().UTC(),
		"description": desc,
	}
	if strings.TrimSpace(name) != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var g models.Group
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&g)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, ErrDuplicateGroupName
		}
		return models.Group{}, err
	}
	return g, nil
}

// Delete removes a group by ID. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AddMember appends a user to the member list. The filter excludes
// groups that already contain the user, so concurrent adds cannot
// produce duplicates.
func (s *Store) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) error {
	filter := bson.M{"_id": groupID, "member_ids": bson.M{"$ne": userID}}
	update := bson.M{
		"$push": bson.M{"member_ids": userID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the group is gone or the user is already in it.
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": groupID})
		if err != nil {
			return err
		}
		if n == 0 {
			return mongo.ErrNoDocuments
		}
		return ErrDuplicateMember
	}
	return nil
}

// RemoveMember pulls a user from the member list. The filter excludes
// groups where the user is the admin, so the admin can never be
// removed even under concurrent requests.
func (s *Store) RemoveMember(ctx context.Context, groupID, userID primitive.ObjectID) error {
	filter := bson.M{"_id": groupID, "admin_id": bson.M{"$ne": userID}}
	update := bson.M{
		"$pull": bson.M{"member_ids": userID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": groupID})
		if err != nil {
			return err
		}
		if n == 0 {
			return mongo.ErrNoDocuments
		}
		return ErrAdminRemoval
	}
	if res.ModifiedCount == 0 {
		return ErrNotMember
	}
	return nil
}

// AppendDiscussion pushes a message onto the group's discussion log
// and returns the stored entry. Only current members may post; the
// filter enforces that atomically.
func (s *Store) AppendDiscussion(ctx context.Context, groupID, authorID primitive.ObjectID, text string) (models.Discussion, error) {
	d := models.Discussion{
		ID:        primitive.NewObjectID(),
		Text:      text,
		UserID:    authorID,
		CreatedAt: time.Now().UTC(),
	}

	filter := bson.M{"_id": groupID, "member_ids": authorID}
	update := bson.M{
		"$push": bson.M{"discussions": d},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.Discussion{}, err
	}
	if res.MatchedCount == 0 {
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": groupID})
		if err != nil {
			return models.Discussion{}, err
		}
		if n == 0 {
			return models.Discussion{}, mongo.ErrNoDocuments
		}
		return models.Discussion{}, ErrNotMember
	}
	return d, nil
}

// SetAssignment updates the group's assignment title and deadline.
// A nil deadline clears it.
func (s *Store) SetAssignment(ctx context.Context, groupID primitive.ObjectID, title string, deadline *time.Time) (models.Group, error) {
	set := bson.M{
		"assignment_title": title,
		"updated_at":       time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if deadline != nil {
		set["deadline"] = deadline.UTC()
	} else {
		update["$unset"] = bson.M{"deadline": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": groupID}, update, opts).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// SetProjectStatus updates the group's project status.
func (s *Store) SetProjectStatus(ctx context.Context, groupID primitive.ObjectID, stat string) (models.Group, error) {
	if !status.IsValid(stat) {
		return models.Group{}, errInvalidStatus
	}

	update := bson.M{"$set": bson.M{
		"project_status": stat,
		"updated_at":     time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": groupID}, update, opts).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}
