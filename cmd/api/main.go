package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/piyushraj0718/payrollmanagement/internal/app"
	"github.com/piyushraj0718/payrollmanagement/internal/bootstrap"
	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, flush, err := bootstrap.NewLogger(cfg, "payroll-api")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer flush()
	logger.Info("configuration loaded", zap.String("config", cfg.String()))

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Error("build app failed", zap.Error(err))
		return
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(ctx, r, bootstrap.ServerConfigFrom(cfg.HTTP), auditLogger); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
