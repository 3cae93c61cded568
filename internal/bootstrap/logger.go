package bootstrap

import (
	"github.com/piyushraj0718/payrollmanagement/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process logger, installs it as zap's global and
// returns a flush func for main to defer. JSON in production, console
// otherwise.
func NewLogger(cfg config.Config, name string) (*zap.Logger, func(), error) {
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		return nil, nil, err
	}

	logger = logger.With(zap.String("service", name), zap.String("env", cfg.AppEnv))
	restore := zap.ReplaceGlobals(logger)
	flush := func() {
		_ = logger.Sync()
		restore()
	}
	return logger, flush, nil
}
