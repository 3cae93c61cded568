package app

import (
	"database/sql"
	"net/http"

	"github.com/piyushraj0718/payrollmanagement/internal/attendance"
	"github.com/piyushraj0718/payrollmanagement/internal/auth"
	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/contact"
	"github.com/piyushraj0718/payrollmanagement/internal/employee"
	"github.com/piyushraj0718/payrollmanagement/internal/messaging/kafka"
	"github.com/piyushraj0718/payrollmanagement/internal/payslip"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	contactRepo := contact.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.JWT, logger)
	employeeService := employee.NewService(db, employeeRepo, rdb, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	payslipService := payslip.NewService(employeeRepo, attendanceRepo, logger)
	contactService := contact.NewService(db, contactRepo, outboxRepo, cfg.Kafka.ContactTopic, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, int(cfg.JWT.TTL.Seconds()), cfg.IsProduction())
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payslipHandler := payslip.NewHandler(payslipService)
	contactHandler := contact.NewHandler(contactService, rdb)

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWT.Secret)
		employee.RegisterRoutes(api, employeeHandler, cfg.JWT.Secret, logger)
		attendance.RegisterRoutes(api, attendanceHandler, cfg.JWT.Secret, logger)
		payslip.RegisterRoutes(api, payslipHandler, cfg.JWT.Secret, logger)
		contact.RegisterRoutes(api, contactHandler, rdb, logger)
	}
}
