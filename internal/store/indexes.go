package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the query indexes at startup. Menu names get no
// unique index on purpose: duplicate protection belongs to the seeding
// routine, and a store-level constraint would reject catalog edits that
// reuse a name.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	menu := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category_index"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_index"),
		},
	}
	if _, err := db.Collection(MenuItems).Indexes().CreateMany(ctx, menu); err != nil {
		log.Println("EnsureIndexes: menuitem index error:", err)
		return err
	}

	order := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "payment_status", Value: 1}},
			Options: options.Index().SetName("payment_status_index"),
		},
		{
			Keys:    bson.D{{Key: "delivery_status", Value: 1}},
			Options: options.Index().SetName("delivery_status_index"),
		},
	}
	if _, err := db.Collection(Orders).Indexes().CreateMany(ctx, order); err != nil {
		log.Println("EnsureIndexes: order index error:", err)
		return err
	}
	return nil
}
