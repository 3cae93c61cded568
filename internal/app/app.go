package app

import (
	"net/http"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/middleware"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/connection"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := openDatabase(cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, logger)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.HTTP.AllowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", contextutil.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", contextutil.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerModules(router, cfg, sqlDB, gormDB, redisClient, zap.L())

	cleanup := func() {
		closeQuietly(logger, "redis", redisClient.Close)
		closeQuietly(logger, "database", sqlDB.Close)
	}
	return cleanup, nil
}
