package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is one entry in a user's address book. More than one address may
// carry the default flag; nothing reconciles them.
type Address struct {
	Line1     string `bson:"line1" json:"line1"`
	Line2     string `bson:"line2,omitempty" json:"line2,omitempty"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	Pincode   string `bson:"pincode" json:"pincode"`
	Landmark  string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	IsDefault bool   `bson:"is_default" json:"is_default"`
}

// Profile holds the user fields shared between registered users and the
// guest snapshot embedded in orders.
type Profile struct {
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone" json:"phone"`
	Addresses []Address `bson:"addresses" json:"addresses"`
}

// User is the persisted user document.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Profile   `bson:",inline"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
