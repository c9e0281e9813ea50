package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"thehook-backend/internal/store"
)

const storeTimeout = 5 * time.Second

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondStoreError maps the error taxonomy onto HTTP statuses: malformed
// identity and validation failures are 400, missing documents 404, anything
// else an opaque 500.
func respondStoreError(c *gin.Context, route string, err error) {
	var invalidRef store.InvalidReferenceError
	if errors.As(err, &invalidRef) {
		respondWithError(c, http.StatusBadRequest, route, invalidRef.Error())
		return
	}
	var notFound store.NotFoundError
	if errors.As(err, &notFound) {
		respondWithError(c, http.StatusNotFound, route, notFound.Error())
		return
	}
	var invalid validationError
	if errors.As(err, &invalid) {
		respondWithError(c, http.StatusBadRequest, route, invalid.Error())
		return
	}
	respondWithError(c, http.StatusInternalServerError, route, "db error")
}

func parseLimit(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}

func storeContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}
