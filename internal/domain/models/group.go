// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a collaborative study group with a single immutable admin,
// a member list, one tracked assignment, and an embedded discussion log.
//
// NOTE:
//   - AdminID is set at creation to the creator and never changes; the
//     only way to remove an admin from a group is to delete the group.
//   - MemberIDs always contains AdminID. Membership changes go through
//     atomic $push/$pull operators with guard filters in the group store,
//     never through a read-modify-write of the whole document.
//   - Discussions is append-only; entries are never edited or removed
//     short of deleting the group.
type Group struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped; unique
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AdminID     primitive.ObjectID `bson:"admin_id" json:"adminId"`

	MemberIDs []primitive.ObjectID `bson:"member_ids" json:"memberIds"`

	AssignmentTitle string       `bson:"assignment_title,omitempty" json:"assignmentTitle,omitempty"`
	Deadline        *time.Time   `bson:"deadline,omitempty" json:"deadline,omitempty"`
	ProjectStatus   string       `bson:"project_status" json:"projectStatus"`
	Discussions     []Discussion `bson:"discussions" json:"discussions"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasMember reports whether userID is in the member list. Member lists
// are classroom-group sized, so a linear scan is fine.
func (g Group) HasMember(userID primitive.ObjectID) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Discussion is one immutable entry in a group's discussion log. The ID
// is issued by the store, never by the client.
type Discussion struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Text      string             `bson:"text" json:"text"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
