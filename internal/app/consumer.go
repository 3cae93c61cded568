package app

import (
	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/contact"
	"github.com/piyushraj0718/payrollmanagement/internal/messaging/kafka/consumer"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/connection"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/mailer"

	"go.uber.org/zap"
)

// RunConsumer mails a notification for every contact message event.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	reader := connection.KafkaReader(cfg.Kafka, cfg.Kafka.ContactTopic)
	defer closeQuietly(logger, "kafka reader", reader.Close)

	notifier := contact.NewNotifier(mailer.NewSMTPSender(cfg.SMTP, logger))

	ctx, stop := shutdownContext()
	defer stop()

	consumer.ConsumeContactMessages(ctx, reader, notifier, logger, consumer.RetryConfigFrom(cfg.Kafka))

	logger.Info("consumer shutting down")
	return nil
}
