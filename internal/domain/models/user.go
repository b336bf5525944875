// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder. Passwords are stored only as bcrypt hashes;
// the raw password never touches this struct.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"first_name" json:"firstName"`
	LastName     string             `bson:"last_name" json:"lastName"`
	Email        string             `bson:"email" json:"email"` // normalized lowercase, unique
	PasswordHash string             `bson:"password_hash" json:"-"`
	MobileNumber string             `bson:"mobile_number,omitempty" json:"mobileNumber,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// DisplayName is the denormalized "First Last" name returned by the
// auth endpoints.
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// UserSummary is the projection of a user embedded in group and course
// responses (admin, members, discussion authors, course creators).
type UserSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Email     string             `bson:"email" json:"email"`
}

// Summary returns the embedded-display projection of u.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}
