package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account on the wish board.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	DisplayName    string             `bson:"display_name" json:"display_name"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// Identity is the authenticated caller passed explicitly into every service
// call. It is resolved once at the HTTP edge from the JWT claims; no service
// reads auth state from a process-wide singleton.
type Identity struct {
	UID  string
	Name string
}

// AuthorName returns the display name to snapshot onto created content,
// falling back to "Anonymous" when the account has none.
func (i Identity) AuthorName() string {
	if i.Name == "" {
		return "Anonymous"
	}
	return i.Name
}
