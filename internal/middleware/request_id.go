package middleware

import (
	"go-workforce/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID keeps the caller's X-Request-ID or mints one, echoes it back and
// propagates it on the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(contextutil.HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)

		c.Header(contextutil.HeaderRequestID, rid)
		c.Next()
	}
}
