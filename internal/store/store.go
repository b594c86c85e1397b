// Package store is the document-store access layer. Handlers talk to
// the interfaces here; the Mongo implementations are constructed once
// in main and injected.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamly/roamly-backend/internal/models"
)

// ErrNotFound reports that a keyed lookup matched no record. Handlers
// map it to 404; every other store error becomes a 500.
var ErrNotFound = errors.New("store: record not found")

// UserStore persists catalog accounts.
type UserStore interface {
	// Insert creates the user and fills in the generated ID.
	Insert(ctx context.Context, user *models.User) error

	// FindByEmail returns the user with exactly this email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByIDs batch-loads users for the review join. IDs that match
	// no record are simply absent from the result map.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
}

// DestinationStore persists catalog destinations and their embedded
// reviews.
type DestinationStore interface {
	// Insert creates the destination and fills in the generated ID.
	Insert(ctx context.Context, dest *models.Destination) error

	// FindAll returns every destination, unbounded.
	FindAll(ctx context.Context) ([]models.Destination, error)

	// FindByName matches the name field by case-insensitive substring.
	FindByName(ctx context.Context, name string) ([]models.Destination, error)

	// FindByCity matches the city field by case-insensitive substring.
	FindByCity(ctx context.Context, city string) ([]models.Destination, error)

	// FindAllByRatingDesc returns every destination ordered by rating,
	// highest first. Ties keep the store's natural order.
	FindAllByRatingDesc(ctx context.Context) ([]models.Destination, error)

	// FindByMinRating returns destinations with rating >= min.
	FindByMinRating(ctx context.Context, min float64) ([]models.Destination, error)

	// FindByID returns the destination with this id, or ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error)

	// UpdateFields overlays the supplied fields onto the stored record
	// and returns the post-update document, or ErrNotFound.
	UpdateFields(ctx context.Context, id primitive.ObjectID, update UpdateDestination) (*models.Destination, error)

	// AppendReview pushes the review onto the end of the reviews
	// sequence and returns the updated document, or ErrNotFound.
	AppendReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.Destination, error)
}

// UpdateDestination carries the partial update for a destination. Nil
// fields are left untouched in the stored record.
type UpdateDestination struct {
	Name        *string
	Description *string
	City        *string
	Country     *string
	Rating      *float64
}
