package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency delays every request by d, for exercising loading
// states in the dashboard. A non-positive d disables it.
func SimulatedLatency(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d > 0 {
			select {
			case <-time.After(d):
			case <-c.Request.Context().Done():
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
