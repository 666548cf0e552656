package models

import (
	"fmt"
	"time"
)

// Like is one user's like of one wish. Records are never deleted; retracting
// a like flips Active to false so the history survives and a retried toggle
// cannot resurrect a stale "create new like" path.
type Like struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	WishID    string    `bson:"wish_id" json:"wish_id"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// LikeKey builds the deterministic composite document id for a (user, wish)
// pair, so the "already liked?" check is a keyed lookup rather than a scan.
func LikeKey(userID, wishID string) string {
	return fmt.Sprintf("%s_%s", userID, wishID)
}
