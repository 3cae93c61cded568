package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	l.Log(ctx, AuditLog{Action: "SERVER_SHUTDOWN", Message: "Server is shutting down"})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "audit", entries[0].LoggerName)
		assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
		assert.Equal(t, "rid-1", fields["request_id"])
		assert.Equal(t, "2024-03-01T08:00:00Z", fields["timestamp"])
	}
}
