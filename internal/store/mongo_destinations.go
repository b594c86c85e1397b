package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roamly/roamly-backend/internal/models"
)

// MongoDestinationStore implements DestinationStore on a mongo
// collection.
type MongoDestinationStore struct {
	collection *mongo.Collection
}

func NewMongoDestinationStore(db *mongo.Database) *MongoDestinationStore {
	return &MongoDestinationStore{collection: db.Collection("destinations")}
}

func (s *MongoDestinationStore) Insert(ctx context.Context, dest *models.Destination) error {
	res, err := s.collection.InsertOne(ctx, dest)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		dest.ID = oid
	}
	return nil
}

func (s *MongoDestinationStore) FindAll(ctx context.Context) ([]models.Destination, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoDestinationStore) FindByName(ctx context.Context, name string) ([]models.Destination, error) {
	return s.find(ctx, containsFilter("name", name))
}

func (s *MongoDestinationStore) FindByCity(ctx context.Context, city string) ([]models.Destination, error) {
	return s.find(ctx, containsFilter("city", city))
}

func (s *MongoDestinationStore) FindAllByRatingDesc(ctx context.Context) ([]models.Destination, error) {
	return s.find(ctx, bson.M{}, options.Find().SetSort(ratingDescSort()))
}

func (s *MongoDestinationStore) FindByMinRating(ctx context.Context, min float64) ([]models.Destination, error) {
	return s.find(ctx, minRatingFilter(min))
}

func (s *MongoDestinationStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	var dest models.Destination
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

func (s *MongoDestinationStore) UpdateFields(ctx context.Context, id primitive.ObjectID, update UpdateDestination) (*models.Destination, error) {
	set := setDocument(update)
	if len(set) == 0 {
		// Nothing to overlay; an empty $set is an invalid update.
		return s.FindByID(ctx, id)
	}

	var dest models.Destination
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

func (s *MongoDestinationStore) AppendReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.Destination, error) {
	var dest models.Destination
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"reviews": review}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

func (s *MongoDestinationStore) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Destination, error) {
	cursor, err := s.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// Empty results must come back as [] on the wire, never null.
	destinations := []models.Destination{}
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}
