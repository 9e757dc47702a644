package middleware

import (
	"go-staffpay/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates X-Request-ID without installing a logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		resolveRequestID(c)
		c.Next()
	}
}

// resolveRequestID returns the id already bound to the request, the inbound
// header, or a fresh uuid, in that order, and binds it to c.
func resolveRequestID(c *gin.Context) string {
	if rid := contextutil.GetRequestID(c.Request.Context()); rid != "" {
		return rid
	}
	rid := c.GetHeader(RequestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Set("request_id", rid)
	c.Header(RequestIDHeader, rid)
	c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
	return rid
}
