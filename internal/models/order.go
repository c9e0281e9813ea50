package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Delivery statuses.
const (
	DeliveryNew            = "new"
	DeliveryPreparing      = "preparing"
	DeliveryOutForDelivery = "out_for_delivery"
	DeliveryDelivered      = "delivered"
	DeliveryCancelled      = "cancelled"
)

// OrderItem references a menu item by its identity token. The unit price is
// resolved when the order is created, not stored on the line.
type OrderItem struct {
	MenuItemID string `bson:"menu_item_id" json:"menu_item_id"`
	Quantity   int    `bson:"quantity" json:"quantity"`
}

// Order is the persisted order document. TotalAmount is fixed at creation
// time; later menu price changes do not touch existing orders.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomerID     *string            `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	GuestDetails   *Profile           `bson:"guest_details,omitempty" json:"guest_details,omitempty"`
	Items          []OrderItem        `bson:"items" json:"items"`
	TotalAmount    float64            `bson:"total_amount" json:"total_amount"`
	PaymentStatus  string             `bson:"payment_status" json:"payment_status"`
	DeliveryStatus string             `bson:"delivery_status" json:"delivery_status"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
