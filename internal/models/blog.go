package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a blog post document. Author and Email always come from the
// creator's verified token claims.
type Blog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Author   string             `bson:"author" json:"author"`
	Email    string             `bson:"email" json:"email"`
	ImageURL string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Date     time.Time          `bson:"date" json:"date"`
}
