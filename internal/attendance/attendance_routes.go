package attendance

import (
	"github.com/piyushraj0718/payrollmanagement/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string, logger *zap.Logger) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(jwtSecret))
	attendances.Use(middleware.ContextLogger(logger))
	{
		attendances.PUT("", middleware.RateLimitByUser(5, 20), h.Mark)
		attendances.GET("/month", middleware.RateLimitByUser(3, 10), h.GetMonthSheet)
		attendances.PUT("/month", middleware.RateLimitByUser(1, 3), h.SaveMonth)
		attendances.GET("/daily", middleware.RateLimitByUser(3, 10), h.GetDailyRoster)
	}
}
