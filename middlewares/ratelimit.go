package middlewares

import (
	"log"
	"net/http"
	"time"

	"nexustap/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

const rateLimitWindow = 1 * time.Minute

// RateLimit caps writes per address per route within a one minute window.
// Fails open: with no Redis configured, or on Redis errors, requests pass.
func RateLimit(maxPerWindow int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ratelimit.Enabled() {
			c.Next()
			return
		}

		address := c.Param("address")
		ok, err := ratelimit.Allow(address, c.FullPath(), maxPerWindow, rateLimitWindow)
		if err != nil {
			log.Printf("Rate limit check failed: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
