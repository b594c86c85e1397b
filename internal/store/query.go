package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// containsFilter builds a case-insensitive substring match on field.
// The needle is quoted so regex metacharacters in user input match
// literally.
func containsFilter(field, needle string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(needle), Options: "i"}}
}

// minRatingFilter matches destinations rated at or above min.
func minRatingFilter(min float64) bson.M {
	return bson.M{"rating": bson.M{"$gte": min}}
}

// ratingDescSort orders by rating, highest first. Ties are left in the
// store's natural order.
func ratingDescSort() bson.D {
	return bson.D{{Key: "rating", Value: -1}}
}

// setDocument builds the $set document for a partial destination
// update. Nil fields are omitted so the stored values survive.
func setDocument(update UpdateDestination) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.City != nil {
		set["city"] = *update.City
	}
	if update.Country != nil {
		set["country"] = *update.Country
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	return set
}
