package middleware

import (
	"time"

	"github.com/civiclink/backend/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// CustomLoggerMiddleware tags each request with an id (reusing the caller's
// X-Request-ID when present) and logs it once it completes.
func CustomLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		entry := logger.WithRequestID(requestID).WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
			"staff":   CurrentStaff(c).Name,
		})

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("[API] request failed")
		case status >= 400:
			entry.Warn("[API] request rejected")
		default:
			entry.Info("[API] request served")
		}
	}
}

// RequestID returns the id assigned by CustomLoggerMiddleware.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
