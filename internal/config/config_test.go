package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(nil)

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "contact.message.received", cfg.Kafka.ContactTopic)
	assert.Equal(t, 3, cfg.Kafka.NotifyAttempts)
	assert.Equal(t, 2*time.Second, cfg.Kafka.NotifyBackoff)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "host=localhost user=postgres password=postgres dbname=payroll port=5432 sslmode=disable", cfg.DB.DSN())
}

func TestParse_Environment(t *testing.T) {
	t.Setenv("PAYROLL_APP_ENV", "production")
	t.Setenv("PAYROLL_HTTP_PORT", "9000")
	t.Setenv("PAYROLL_SMTP_PORT", "465")
	t.Setenv("PAYROLL_KAFKA_MAX_RETRIES", "8")

	cfg, err := parse(nil)

	assert.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Equal(t, 8, cfg.Kafka.MaxRetries)
}

func TestParse_Flags(t *testing.T) {
	cfg, err := parse([]string{"--http-port=7000"})

	assert.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTP.Port)
}

func TestString_MasksSecrets(t *testing.T) {
	cfg, err := parse(nil)
	assert.NoError(t, err)

	out := cfg.String()
	assert.NotContains(t, out, "change-me")
	assert.Contains(t, out, "localhost:6379")
}
