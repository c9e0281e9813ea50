package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"thehook-backend/internal/models"
	"thehook-backend/internal/store"
)

type paymentCreateRequest struct {
	OrderAmount float64 `json:"order_amount" binding:"required"`
	Currency    string  `json:"currency"`
}

type paymentConfirmRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature"`
}

// CreatePayment issues a mock payment intent. No provider is called; the id
// only needs to round-trip through the confirm endpoint.
func CreatePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /payments/create"
		defer handlePanic(c, route)

		var req paymentCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		currency := req.Currency
		if currency == "" {
			currency = "INR"
		}

		c.JSON(http.StatusOK, gin.H{
			"payment_id": "mock_" + uuid.NewString(),
			"amount":     req.OrderAmount,
			"currency":   currency,
			"provider":   "mock",
		})
	}
}

// ConfirmPayment marks the order paid without verifying payment_id or
// signature against any provider, and regardless of the current payment
// status. A real integration must verify the provider signature before
// allowing this transition.
func ConfirmPayment(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /payments/confirm"
		defer handlePanic(c, route)

		var req paymentConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		id, err := store.ParseID("order_id", req.OrderID)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		var order models.Order
		set := bson.M{"payment_status": models.PaymentPaid}
		if err := st.FindOneAndUpdate(ctx, store.Orders, bson.M{"_id": id}, set, &order); err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] payment %s confirmed for order %s", route, req.PaymentID, req.OrderID)
		c.JSON(http.StatusOK, gin.H{"status": "success", "order": order})
	}
}
