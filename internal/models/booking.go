package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a trip booking document. User holds the booking creator's
// email; it is informational only and not used for access decisions.
type Booking struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	People int                `bson:"people" json:"people"`
	City   string             `bson:"city" json:"city"`
	Price  string             `bson:"price" json:"price"`
	User   string             `bson:"user" json:"user"`
	Date   time.Time          `bson:"date" json:"date"`
}
