package bootstrap

import (
	"testing"

	"github.com/piyushraj0718/payrollmanagement/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLogger_ReplacesGlobalUntilFlush(t *testing.T) {
	before := zap.L()

	logger, flush, err := NewLogger(config.Config{AppEnv: "development"}, "payroll-test")
	assert.NoError(t, err)
	assert.Same(t, logger, zap.L())

	flush()
	assert.Same(t, before, zap.L())
}
