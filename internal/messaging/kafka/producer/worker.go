package producer

import (
	"context"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/messaging/kafka"

	"go.uber.org/zap"
)

type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxRetries   int
}

func WorkerConfigFrom(cfg config.KafkaConfig) WorkerConfig {
	return WorkerConfig{
		PollInterval: cfg.PollInterval,
		BatchSize:    cfg.BatchSize,
		MaxRetries:   cfg.MaxRetries,
	}
}

func (c WorkerConfig) withDefaults() WorkerConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = 3 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 5
	}
	return c
}

// ProcessOutboxEvents polls the outbox until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	cfg WorkerConfig,
) {
	cfg = cfg.withDefaults()

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started",
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.Int("batch_size", cfg.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			drain(ctx, repo, writer, log, cfg)
		}
	}
}

// drain keeps pulling batches while they come back full so a backlog clears
// without waiting a poll interval per batch.
func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, logger *zap.Logger, cfg WorkerConfig) {
	for ctx.Err() == nil {
		n, err := processPendingEvents(ctx, repo, writer, logger, cfg)
		if err != nil {
			logger.Error("process outbox events failed", zap.Error(err))
			return
		}
		if n < cfg.BatchSize {
			return
		}
	}
}

// processPendingEvents publishes one batch and returns how many were sent.
func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	cfg WorkerConfig,
) (int, error) {
	events, err := repo.ListPending(ctx, cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		evLog := logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)

		if err := publishEvent(ctx, writer, event); err != nil {
			evLog.Error("publish outbox event failed", zap.Int("retry_count", event.RetryCount), zap.Error(err))
			if err := repo.MarkFailed(ctx, event.ID, err.Error(), cfg.MaxRetries); err != nil {
				evLog.Error("record outbox failure failed", zap.Error(err))
			}
			continue
		}
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// published but not marked; the next poll sends it again
			evLog.Error("mark outbox sent failed", zap.Error(err))
			continue
		}

		sent++
		evLog.Info("outbox event sent")
	}
	return sent, nil
}
