package middleware

import (
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger copies the caller identity into the request context and
// attaches a logger tagged with it. Mount it after AuthMiddleware on
// protected groups.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		md := contextutil.Metadata{
			RequestID:    c.GetString(requestIDKey),
			UserID:       c.GetString("user_id"),
			Organization: c.GetString("organization"),
		}
		if md.RequestID == "" {
			// RequestID was not mounted in front of this group
			md.RequestID = uuid.NewString()
			c.Header(contextutil.RequestIDHeader, md.RequestID)
		}

		ctx := md.Inject(c.Request.Context())
		ctx = contextutil.WithLogger(ctx, logger.With(md.Fields()...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
