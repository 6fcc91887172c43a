package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"travelblog/internal/models"
)

// MongoBookingStore persists bookings in the "bookings" collection.
type MongoBookingStore struct {
	collection *mongo.Collection
}

func NewMongoBookingStore(database *mongo.Database) *MongoBookingStore {
	return &MongoBookingStore{collection: database.Collection("bookings")}
}

func (s *MongoBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.Date = time.Now()

	_, err := s.collection.InsertOne(ctx, booking)
	return err
}

func (s *MongoBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *MongoBookingStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
