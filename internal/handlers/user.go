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

type addressRequest struct {
	Line1     string `json:"line1" binding:"required"`
	Line2     string `json:"line2"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pincode   string `json:"pincode" binding:"required"`
	Landmark  string `json:"landmark"`
	IsDefault *bool  `json:"is_default"`
}

type userRequest struct {
	Name      string           `json:"name" binding:"required"`
	Email     string           `json:"email" binding:"omitempty,email"`
	Phone     string           `json:"phone" binding:"required"`
	Addresses []addressRequest `json:"addresses" binding:"omitempty,dive"`
}

// profile converts the bound request into the persisted shape, applying the
// is_default=true default for addresses that leave the flag out.
func (r userRequest) profile() models.Profile {
	addresses := make([]models.Address, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		isDefault := true
		if a.IsDefault != nil {
			isDefault = *a.IsDefault
		}
		addresses = append(addresses, models.Address{
			Line1:     a.Line1,
			Line2:     a.Line2,
			City:      a.City,
			State:     a.State,
			Pincode:   a.Pincode,
			Landmark:  a.Landmark,
			IsDefault: isDefault,
		})
	}
	return models.Profile{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Addresses: addresses,
	}
}

func CreateUser(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users"
		defer handlePanic(c, route)

		var req userRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		user := models.User{
			Profile:   req.profile(),
			CreatedAt: time.Now().UTC(),
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		id, err := st.Insert(ctx, store.Users, user)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		user.ID = id

		log.Printf("[%s] user created: %s", route, id.Hex())
		c.JSON(http.StatusCreated, user)
	}
}

func ListUsers(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users"
		defer handlePanic(c, route)

		ctx, cancel := storeContext(c)
		defer cancel()

		users := make([]models.User, 0)
		if err := st.Find(ctx, store.Users, bson.M{}, parseLimit(c.Query("limit"), 50), &users); err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, users)
	}
}
