package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the browser allow-list: the wildcard plus FRONTEND_URL. The
// wildcard accepts everything, so the configured origin only matters once
// the wildcard entry is removed.
func CORS(frontendURL string) gin.HandlerFunc {
	origins := []string{"*"}
	if u := strings.TrimSpace(frontendURL); u != "" {
		origins = append(origins, u)
	}

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range origins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
