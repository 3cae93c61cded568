package app

import (
	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/messaging/kafka"
	"github.com/piyushraj0718/payrollmanagement/internal/messaging/kafka/producer"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker is the outbox relay process. It blocks until a shutdown signal.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	_, sqlDB, err := openDatabase(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer closeQuietly(logger, "database", sqlDB.Close)

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka, logger)
	if err != nil {
		return err
	}
	defer closeQuietly(logger, "kafka writer", writer.Close)

	ctx, stop := shutdownContext()
	defer stop()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), writer, logger, producer.WorkerConfigFrom(cfg.Kafka))

	logger.Info("outbox relay stopped")
	return nil
}
