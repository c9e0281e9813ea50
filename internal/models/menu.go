package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is the persisted catalog entry. The name doubles as the natural
// dedup key during seeding; the store itself enforces no uniqueness on it.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Veg         bool               `bson:"veg" json:"veg"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
