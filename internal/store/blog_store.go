package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelblog/internal/models"
)

// MongoBlogStore persists blog posts in the "blogs" collection.
type MongoBlogStore struct {
	collection *mongo.Collection
}

func NewMongoBlogStore(database *mongo.Database) *MongoBlogStore {
	return &MongoBlogStore{collection: database.Collection("blogs")}
}

func (s *MongoBlogStore) Create(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.Date = time.Now()

	_, err := s.collection.InsertOne(ctx, blog)
	return err
}

// List returns all posts, newest first.
func (s *MongoBlogStore) List(ctx context.Context) ([]models.Blog, error) {
	sort := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *MongoBlogStore) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var blog models.Blog
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// SetImageURL updates a post's image URL and returns the updated document.
func (s *MongoBlogStore) SetImageURL(ctx context.Context, id, url string) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var blog models.Blog
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"image_url": url}},
		after,
	).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *MongoBlogStore) Delete(ctx context.Context, id string) error {
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
