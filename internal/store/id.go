package store

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID turns an opaque identity token into a native key. Malformed tokens
// fail with InvalidReferenceError, keeping raw hex handling at the boundary.
func ParseID(field, token string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(token)
	if err != nil {
		return primitive.NilObjectID, InvalidReferenceError{Field: field, Value: token}
	}
	return id, nil
}
