package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// RequestID is a Gin middleware that attaches a unique identifier
// to each incoming HTTP request.
//
// Behavior:
//   - Reuses the "X-Request-ID" header when the caller (or a fronting
//     proxy) already assigned one; generates a UUID (v4) otherwise.
//   - Stores it in the Gin context under the key "request_id".
//   - Echoes it in the response headers as "X-Request-ID".
//   - Ensures traceability of page requests across logs and clients.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
//
// Example log usage:
//
//	rid, _ := c.Get(middleware.RequestIDKey)
//	log.Printf("request_id=%s some log message", rid)
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		// Store in context for downstream usage
		c.Set(RequestIDKey, id)

		// Expose in response headers for clients
		c.Writer.Header().Set(requestIDHeader, id)

		// Continue with the next handlers
		c.Next()
	}
}
