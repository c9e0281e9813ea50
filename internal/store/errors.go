package store

import "fmt"

// InvalidReferenceError reports an identity token that does not parse into
// the store's native key format.
type InvalidReferenceError struct {
	Field string
	Value string
}

func (e InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid %s", e.Field)
}

// NotFoundError reports a reference to a document that does not exist.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + " not found"
}
