package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a catalog account. Passwords are stored and returned exactly
// as received; this service does no hashing.
type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name           string `bson:"name" json:"name"`
	Username       string `bson:"username" json:"username"`
	Email          string `bson:"email" json:"email"`
	Password       string `bson:"password" json:"password"`
	ProfilePicture string `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
}

// UserSummary is the reduced projection substituted for a review's
// author when reviews are read back with user details.
type UserSummary struct {
	Username       string `bson:"username" json:"username"`
	ProfilePicture string `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
}
