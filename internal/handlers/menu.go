package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"thehook-backend/internal/models"
	"thehook-backend/internal/store"
)

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	ImageURL    string  `json:"image_url"`
	Veg         *bool   `json:"veg"`
}

func (r menuItemRequest) item() models.MenuItem {
	veg := true
	if r.Veg != nil {
		veg = *r.Veg
	}
	return models.MenuItem{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Veg:         veg,
		CreatedAt:   time.Now().UTC(),
	}
}

func CreateMenuItem(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /menu"
		defer handlePanic(c, route)

		var req menuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		item := req.item()

		ctx, cancel := storeContext(c)
		defer cancel()

		id, err := st.Insert(ctx, store.MenuItems, item)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		item.ID = id

		log.Printf("[%s] menu item created: %s (%s)", route, item.Name, id.Hex())
		c.JSON(http.StatusCreated, item)
	}
}

func ListMenu(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /menu"
		defer handlePanic(c, route)

		filter := bson.M{}
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		items := make([]models.MenuItem, 0)
		if err := st.Find(ctx, store.MenuItems, filter, parseLimit(c.Query("limit"), 200), &items); err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
