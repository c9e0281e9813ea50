package store

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
}

func TestMemoryInsertAndFind(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, MenuItems, testDoc{Name: "Paneer Tikka", Price: 239})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id.IsZero() {
		t.Fatal("Insert returned zero id")
	}

	docs := make([]testDoc, 0)
	if err := m.Find(ctx, MenuItems, bson.M{"_id": id}, 1, &docs); err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected one document, got %d", len(docs))
	}
	if docs[0].Name != "Paneer Tikka" || docs[0].Price != 239 {
		t.Fatalf("round trip mismatch: %+v", docs[0])
	}
}

func TestMemoryFindRespectsLimitAndFilter(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := m.Insert(ctx, MenuItems, testDoc{Name: "Naan", Price: float64(i)}); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}
	if _, err := m.Insert(ctx, MenuItems, testDoc{Name: "Roti", Price: 29}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	docs := make([]testDoc, 0)
	if err := m.Find(ctx, MenuItems, bson.M{"name": "Naan"}, 3, &docs); err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(docs))
	}
}

func TestMemoryFindOneAndUpdate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, Orders, bson.M{"payment_status": "pending", "delivery_status": "new"})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	var updated bson.M
	err = m.FindOneAndUpdate(ctx, Orders, bson.M{"_id": id}, bson.M{"payment_status": "paid"}, &updated)
	if err != nil {
		t.Fatalf("FindOneAndUpdate returned error: %v", err)
	}
	if updated["payment_status"] != "paid" {
		t.Fatalf("expected payment_status paid, got %v", updated["payment_status"])
	}
	if updated["delivery_status"] != "new" {
		t.Fatalf("expected delivery_status untouched, got %v", updated["delivery_status"])
	}
}

func TestMemoryFindOneAndUpdateMissing(t *testing.T) {
	m := NewMemory()

	var out bson.M
	err := m.FindOneAndUpdate(context.Background(), Orders,
		bson.M{"_id": primitive.NewObjectID()}, bson.M{"payment_status": "paid"}, &out)

	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestMemoryCollections(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Insert(ctx, Orders, bson.M{}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if _, err := m.Insert(ctx, MenuItems, bson.M{}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	names, err := m.Collections(ctx)
	if err != nil {
		t.Fatalf("Collections returned error: %v", err)
	}
	if len(names) != 2 || names[0] != MenuItems || names[1] != Orders {
		t.Fatalf("expected sorted [menuitem order], got %v", names)
	}
}

func TestParseID(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := ParseID("order id", want.Hex())
	if err != nil {
		t.Fatalf("ParseID returned error for valid token: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want.Hex(), got.Hex())
	}

	_, err = ParseID("order id", "nope")
	var invalidRef InvalidReferenceError
	if !errors.As(err, &invalidRef) {
		t.Fatalf("expected InvalidReferenceError, got %v", err)
	}
	if invalidRef.Field != "order id" {
		t.Fatalf("expected field in error, got %+v", invalidRef)
	}
}
