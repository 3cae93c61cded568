package middleware

import (
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID accepts a caller supplied X-Request-ID or mints a uuid, then
// exposes it to gin handlers, to services via the request context and to the
// client via the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(contextutil.RequestIDHeader)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Header(contextutil.RequestIDHeader, rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))

		c.Next()
	}
}
