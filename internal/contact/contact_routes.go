package contact

import (
	"github.com/piyushraj0718/payrollmanagement/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the public contact form endpoint.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	contact := r.Group("/contact-messages")
	contact.Use(middleware.ContextLogger(logger))
	{
		if rdb != nil {
			contact.POST("", middleware.RateLimitByIP(0.2, 3), middleware.Idempotency(rdb), handler.Create)
		} else {
			contact.POST("", middleware.RateLimitByIP(0.2, 3), handler.Create)
		}
	}
}
