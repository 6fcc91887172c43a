package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelblog/internal/models"
)

// MongoAccountStore persists accounts in the "users" collection.
type MongoAccountStore struct {
	collection *mongo.Collection
}

// NewMongoAccountStore returns an account store backed by the given
// database. It ensures a unique index on email, so concurrent signups with
// the same address cannot both insert even though the handler's existence
// check is best-effort.
func NewMongoAccountStore(database *mongo.Database) *MongoAccountStore {
	collection := database.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logrus.WithError(err).Warn("Failed to ensure unique index on users.email")
	}

	return &MongoAccountStore{collection: collection}
}

func (s *MongoAccountStore) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()

	_, err := s.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *MongoAccountStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all accounts with the password field projected away.
func (s *MongoAccountStore) List(ctx context.Context) ([]models.User, error) {
	projection := options.Find().SetProjection(bson.D{{Key: "password", Value: 0}})
	cursor, err := s.collection.Find(ctx, bson.D{}, projection)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
