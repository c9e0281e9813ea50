package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store for tests and local development. Filters
// support the equality matches the handlers actually issue.
type Memory struct {
	mu   sync.Mutex
	data map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]bson.M)}
}

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	var raw bson.M
	if err := roundTrip(doc, &raw); err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	raw["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = append(m.data[collection], raw)
	return id, nil
}

func (m *Memory) Find(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	m.mu.Lock()
	matched := make([]bson.M, 0)
	for _, doc := range m.data[collection] {
		if matches(doc, filter) {
			matched = append(matched, doc)
			if limit > 0 && int64(len(matched)) == limit {
				break
			}
		}
	}
	m.mu.Unlock()

	return roundTrip(matched, out)
}

func (m *Memory) FindOneAndUpdate(ctx context.Context, collection string, filter bson.M, set bson.M, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.data[collection] {
		if !matches(doc, filter) {
			continue
		}
		for key, value := range set {
			doc[key] = value
		}
		return roundTrip(doc, out)
	}
	return NotFoundError{Entity: collection}
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

// roundTrip re-encodes src through bson so typed documents and raw maps
// convert both ways, mirroring what the driver does on the wire.
func roundTrip(src, dst any) error {
	raw, err := bson.Marshal(bson.M{"v": src})
	if err != nil {
		return err
	}
	return bson.Raw(raw).Lookup("v").Unmarshal(dst)
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
