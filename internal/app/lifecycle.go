package app

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/connection"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// openDatabase returns the gorm handle and the *sql.DB underneath it. Both
// share one pool; closing sqlDB closes both.
func openDatabase(cfg config.DBConfig, logger *zap.Logger) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("database connection established")
	return gormDB, sqlDB, nil
}

// shutdownContext is cancelled on SIGINT or SIGTERM.
func shutdownContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func closeQuietly(logger *zap.Logger, what string, close func() error) {
	if err := close(); err != nil {
		logger.Warn("close "+what+" failed", zap.Error(err))
	}
}
