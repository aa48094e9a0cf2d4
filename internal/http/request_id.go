package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/library/internal/audit"
)

const (
	requestIDHeader = "X-Request-Id"

	// ContextKeyRequestID is the gin context key holding the request id.
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware reuses the caller's X-Request-Id or generates one.
// The id is echoed on the response and carried in the request context,
// where the audit service picks it up.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(requestIDHeader, requestID)
		c.Set(ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(audit.ContextWithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}
