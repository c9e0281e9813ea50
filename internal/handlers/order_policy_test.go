package handlers

import (
	"errors"
	"testing"

	"thehook-backend/internal/models"
)

func TestZeroPolicyAcceptsEverything(t *testing.T) {
	var policy OrderPolicy

	if err := policy.Check(nil); err != nil {
		t.Fatalf("expected empty items to pass, got %v", err)
	}
	if err := policy.Check([]models.OrderItem{{MenuItemID: "x", Quantity: 0}}); err != nil {
		t.Fatalf("expected zero quantity to pass, got %v", err)
	}
	if err := policy.Check([]models.OrderItem{{MenuItemID: "x", Quantity: -1}}); err != nil {
		t.Fatalf("expected negative quantity to pass, got %v", err)
	}
}

func TestStrictPolicyRejectsEmptyItems(t *testing.T) {
	policy := OrderPolicy{RequireItems: true}

	err := policy.Check(nil)
	var invalid validationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validationError, got %v", err)
	}
}

func TestStrictPolicyRejectsNonPositiveQuantity(t *testing.T) {
	policy := OrderPolicy{RequirePositiveQuantity: true}

	for _, quantity := range []int{0, -3} {
		err := policy.Check([]models.OrderItem{{MenuItemID: "x", Quantity: quantity}})
		var invalid validationError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected validationError for quantity %d, got %v", quantity, err)
		}
	}

	if err := policy.Check([]models.OrderItem{{MenuItemID: "x", Quantity: 1}}); err != nil {
		t.Fatalf("expected quantity 1 to pass, got %v", err)
	}
}
