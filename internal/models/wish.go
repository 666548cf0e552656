package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is one of the fixed set of wish categories.
type Category string

const (
	CategoryEducation Category = "Education"
	CategoryHealth    Category = "Health"
	CategoryFamily    Category = "Family"
	CategoryCareer    Category = "Career"
	CategoryTravel    Category = "Travel"
	CategoryPersonal  Category = "Personal"
	CategoryHome      Category = "Home"
	CategoryOther     Category = "Other"
)

// Categories lists every recognized wish category.
var Categories = []Category{
	CategoryEducation,
	CategoryHealth,
	CategoryFamily,
	CategoryCareer,
	CategoryTravel,
	CategoryPersonal,
	CategoryHome,
	CategoryOther,
}

// IsValidCategory reports whether c is one of the enumerated categories.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Author is an immutable snapshot of the wish author's identity taken at
// creation time. Renaming the user later does not change past wishes.
type Author struct {
	UID  string `bson:"uid" json:"uid"`
	Name string `bson:"name" json:"name"`
}

type Wish struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    Category           `bson:"category" json:"category"`
	CreatedBy   Author             `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	IsFulfilled bool               `bson:"is_fulfilled" json:"is_fulfilled"`
	LikesCount  int64              `bson:"likes_count" json:"likes_count"`
}

// WishStatus selects wishes by fulfillment state when listing.
type WishStatus string

const (
	StatusAll       WishStatus = "all"
	StatusOpen      WishStatus = "open"
	StatusFulfilled WishStatus = "fulfilled"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// WishFilter describes a catalog query. Status and Category are pushed down
// to the store; SearchQuery is matched in memory against the title only,
// since the store has no text search.
type WishFilter struct {
	Status      WishStatus
	Category    string
	SearchQuery string
}
