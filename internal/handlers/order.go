package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"thehook-backend/internal/models"
	"thehook-backend/internal/store"
)

type orderItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   *int   `json:"quantity"`
}

// createOrderRequest deliberately has no total_amount field: the total is
// always computed server-side, whatever the client sends.
type createOrderRequest struct {
	CustomerID   *string            `json:"customer_id"`
	GuestDetails *userRequest       `json:"guest_details"`
	Items        []orderItemRequest `json:"items" binding:"omitempty,dive"`
	Notes        string             `json:"notes"`
}

type updateOrderStatusRequest struct {
	PaymentStatus  *string `json:"payment_status" binding:"omitempty,oneof=pending paid failed"`
	DeliveryStatus *string `json:"delivery_status" binding:"omitempty,oneof=new preparing out_for_delivery delivered cancelled"`
}

// orderItems normalizes the bound items: a missing quantity means 1, while
// an explicit 0 is kept.
func orderItems(reqItems []orderItemRequest) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(reqItems))
	for _, item := range reqItems {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		items = append(items, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   quantity,
		})
	}
	return items
}

func CreateOrder(st store.Store, policy OrderPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		items := orderItems(req.Items)
		if err := policy.Check(items); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		total, err := computeOrderTotal(ctx, st, items)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		order := models.Order{
			CustomerID:     req.CustomerID,
			Items:          items,
			TotalAmount:    total,
			PaymentStatus:  models.PaymentPending,
			DeliveryStatus: models.DeliveryNew,
			Notes:          req.Notes,
			CreatedAt:      time.Now().UTC(),
		}
		if req.GuestDetails != nil {
			guest := req.GuestDetails.profile()
			order.GuestDetails = &guest
		}

		id, err := st.Insert(ctx, store.Orders, order)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		order.ID = id

		log.Printf("[%s] order created: %s total=%.2f", route, id.Hex(), total)
		c.JSON(http.StatusCreated, order)
	}
}

func ListOrders(st store.Store, route string, defaultLimit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, route)

		ctx, cancel := storeContext(c)
		defer cancel()

		orders := make([]models.Order, 0)
		if err := st.Find(ctx, store.Orders, bson.M{}, parseLimit(c.Query("limit"), defaultLimit), &orders); err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus applies a partial status update: only the fields present
// in the body are written, in a single atomic $set. Transitions are not
// constrained; delivered or cancelled orders still accept further updates.
func UpdateOrderStatus(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /orders/:id"
		defer handlePanic(c, route)

		id, err := store.ParseID("order id", c.Param("id"))
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		set := bson.M{}
		if req.PaymentStatus != nil {
			set["payment_status"] = *req.PaymentStatus
		}
		if req.DeliveryStatus != nil {
			set["delivery_status"] = *req.DeliveryStatus
		}
		if len(set) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no updates provided")
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		var order models.Order
		if err := st.FindOneAndUpdate(ctx, store.Orders, bson.M{"_id": id}, set, &order); err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
