// Package store wraps the document database behind a small collaborator
// interface so the handlers can be exercised against an in-memory fake.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names used across the service.
const (
	Users     = "user"
	MenuItems = "menuitem"
	Orders    = "order"
)

// Store is the document-store collaborator. Every operation is a single
// point-to-point call; no implementation holds locks or transactions across
// calls, so concurrent writers race at single-document granularity.
type Store interface {
	// Collections lists the names of the existing collections.
	Collections(ctx context.Context) ([]string, error)

	// Insert stores doc and returns the identity assigned to it.
	Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)

	// Find decodes at most limit documents matching filter into out, which
	// must be a pointer to a slice. limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter bson.M, limit int64, out any) error

	// FindOneAndUpdate applies a single atomic $set to the first document
	// matching filter and decodes the post-update document into out.
	// Returns a NotFoundError when nothing matches.
	FindOneAndUpdate(ctx context.Context, collection string, filter bson.M, set bson.M, out any) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
