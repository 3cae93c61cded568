package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/events"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type ContactNotifier interface {
	NotifyContactMessage(ctx context.Context, event events.ContactMessageReceivedEvent) error
}

// RetryConfig bounds the in-place notification retries for one message.
// The wait before attempt n+1 is n*Backoff.
type RetryConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

func RetryConfigFrom(cfg config.KafkaConfig) RetryConfig {
	return RetryConfig{MaxAttempts: cfg.NotifyAttempts, Backoff: cfg.NotifyBackoff}
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.Backoff < 0 {
		c.Backoff = 0
	}
	return c
}

var errUndecodable = errors.New("undecodable contact message event")

// ConsumeContactMessages sends a notification for every received contact
// message. Offsets are committed cumulatively per partition, so a message is
// never skipped silently: a failed notification is retried in place and,
// once the attempts are spent, logged as a dead letter before its offset is
// committed. Undecodable messages are committed and skipped.
func ConsumeContactMessages(
	ctx context.Context,
	reader MessageReader,
	notifier ContactNotifier,
	logger *zap.Logger,
	retry RetryConfig,
) {
	retry = retry.withDefaults()
	log := logger.Named("kafka.consumer.contact_message")
	log.Info("contact message consumer started", zap.Int("max_attempts", retry.MaxAttempts))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("contact message consumer stopped")
				return
			}
			log.Error("fetch contact message failed", zap.Error(err))
			continue
		}

		msgLog := log.With(zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))

		event, err := decodeContactMessage(msg)
		if err != nil {
			msgLog.Error("decode contact message event failed", zap.Error(err))
		} else if err := notifyWithRetry(ctx, notifier, event, retry, msgLog); err != nil {
			if ctx.Err() != nil {
				// uncommitted, the group picks it up again after restart
				log.Info("contact message consumer stopped")
				return
			}
			msgLog.Error("contact notification dead-lettered",
				zap.String("message_id", event.MessageID),
				zap.String("request_id", event.RequestID),
				zap.Int("attempts", retry.MaxAttempts),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			msgLog.Error("commit contact message failed", zap.Error(err))
		}
	}
}

func decodeContactMessage(msg kafkago.Message) (events.ContactMessageReceivedEvent, error) {
	var event events.ContactMessageReceivedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, errors.Join(errUndecodable, err)
	}
	if event.MessageID == "" || event.Email == "" {
		return event, errUndecodable
	}
	return event, nil
}

// notifyWithRetry returns the last notification error once MaxAttempts are
// used, or ctx's error if it is cancelled while waiting.
func notifyWithRetry(
	ctx context.Context,
	notifier ContactNotifier,
	event events.ContactMessageReceivedEvent,
	retry RetryConfig,
	logger *zap.Logger,
) error {
	ctx = contextutil.WithRequestID(ctx, event.RequestID)

	var err error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		if err = notifier.NotifyContactMessage(ctx, event); err == nil {
			return nil
		}
		if attempt == retry.MaxAttempts {
			break
		}
		logger.Warn("contact notification failed, retrying",
			zap.String("message_id", event.MessageID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		timer := time.NewTimer(time.Duration(attempt) * retry.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
