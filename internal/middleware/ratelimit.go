package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"taskbuster/pkg/response"
)

// Rate limit defaults: 100 requests per 15-minute window per client.
const (
	DefaultRateLimitRequests = 100
	DefaultRateLimitWindow   = 15 * time.Minute

	// limiterCacheSize bounds the number of per-client limiters kept in
	// memory; the least recently seen clients are evicted first.
	limiterCacheSize = 4096
)

// RateLimit enforces a per-client token bucket keyed by client IP. Evicted
// clients simply start a fresh bucket, which errs on the permissive side.
func (m Middleware) RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	if requests <= 0 {
		requests = DefaultRateLimitRequests
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}

	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	limit := rate.Every(window / time.Duration(requests))

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, requests)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
