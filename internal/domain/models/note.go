// internal/domain/models/note.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a personal task item on the owner's Kanban board.
//
// NOTE:
//   - UserID is set at creation and never changes; every store operation
//     filters on it so a note is invisible to everyone but its owner.
//   - Status takes the three workflow values from the status package
//     ("To do", "In progress", "Done"); the store rejects anything else.
type Note struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
	Status  string             `bson:"status" json:"status"`
	UserID  primitive.ObjectID `bson:"user_id" json:"userId"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
