package payslip

import (
	"github.com/piyushraj0718/payrollmanagement/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
	logger *zap.Logger,
) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware(jwtSecret))
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.GET("", middleware.RateLimitByUser(3, 10), handler.Get)
		payslips.GET("/pdf", middleware.RateLimitByUser(1, 5), handler.DownloadPDF)
		payslips.GET("/xlsx", middleware.RateLimitByUser(1, 5), handler.DownloadXLSX)
	}
}
