package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"thehook-backend/internal/store"
)

// Health is the connectivity probe: it lists the store's collections so a
// green response proves the database round-trip, not just the process.
func Health(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /test"
		defer handlePanic(c, route)

		ctx, cancel := storeContext(c)
		defer cancel()

		collections, err := st.Collections(ctx)
		if err != nil {
			log.Printf("[%s] store unreachable: %v", route, err)
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db_collections": collections})
	}
}
