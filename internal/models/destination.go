package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Destination is a catalog entry. Reviews keep insertion order and are
// only ever appended to by this service.
type Destination struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	City        string   `bson:"city" json:"city"`
	Country     string   `bson:"country" json:"country"`
	Rating      float64  `bson:"rating" json:"rating"`
	Reviews     []Review `bson:"reviews" json:"reviews"`
}

// Review references its author by id only. The reference is weak: the
// user record may be deleted out from under it.
type Review struct {
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Text   string             `bson:"text" json:"text"`
}

// ResolvedReview is a Review with the author reference replaced by a
// UserSummary. User is nil when the referenced account no longer exists.
type ResolvedReview struct {
	User *UserSummary `json:"userId"`
	Text string       `json:"text"`
}
