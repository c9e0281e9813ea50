package handlers

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"thehook-backend/internal/models"
	"thehook-backend/internal/store"
)

// computeOrderTotal resolves the current menu price of every line item and
// sums price * quantity, rounded to two decimals (half away from zero).
// Prices are read live, so the result is a snapshot: later menu edits never
// touch stored orders. Quantity is used as supplied; an empty item list
// yields 0 without error.
func computeOrderTotal(ctx context.Context, st store.Store, items []models.OrderItem) (float64, error) {
	var total float64
	for _, item := range items {
		id, err := store.ParseID("menu_item_id", item.MenuItemID)
		if err != nil {
			return 0, err
		}

		matched := make([]models.MenuItem, 0, 1)
		if err := st.Find(ctx, store.MenuItems, bson.M{"_id": id}, 1, &matched); err != nil {
			return 0, err
		}
		if len(matched) == 0 {
			return 0, store.NotFoundError{Entity: "menu item"}
		}

		total += matched[0].Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100, nil
}
