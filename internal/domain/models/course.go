// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a catalog entry readable by any signed-in user.
//
// Code is globally unique (unique index on the collection). AddedBy is
// the creator and the only user allowed to edit or delete the course;
// when AddedBy is nil nobody may mutate it.
type Course struct {
	ID          primitive.ObjectID  `bson:"_id" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Code        string              `bson:"code" json:"code"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	AddedBy     *primitive.ObjectID `bson:"added_by,omitempty" json:"addedBy,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
