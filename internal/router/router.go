// Package router assembles the HTTP surface over the injected store.
package router

import (
	"github.com/gin-gonic/gin"

	"thehook-backend/internal/handlers"
	"thehook-backend/internal/middleware"
	"thehook-backend/internal/store"
)

func New(st store.Store, policy handlers.OrderPolicy, frontendURL string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(frontendURL))

	r.GET("/test", handlers.Health(st))

	r.POST("/users", handlers.CreateUser(st))
	r.GET("/users", handlers.ListUsers(st))

	r.POST("/menu", handlers.CreateMenuItem(st))
	r.GET("/menu", handlers.ListMenu(st))

	r.POST("/orders", handlers.CreateOrder(st, policy))
	r.GET("/orders", handlers.ListOrders(st, "GET /orders", 100))
	r.PATCH("/orders/:id", handlers.UpdateOrderStatus(st))

	r.POST("/payments/create", handlers.CreatePayment())
	r.POST("/payments/confirm", handlers.ConfirmPayment(st))

	admin := r.Group("/admin")
	{
		admin.GET("/orders", handlers.ListOrders(st, "GET /admin/orders", 50))
		admin.POST("/seed_menu", handlers.SeedMenu(st))
	}

	return r
}
