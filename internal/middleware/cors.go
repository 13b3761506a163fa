package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultClientOrigin is the browser origin allowed when none is configured.
const DefaultClientOrigin = "http://localhost:3000"

// CORS allows the configured browser origin only.
func (m Middleware) CORS(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = DefaultClientOrigin
	}
	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
