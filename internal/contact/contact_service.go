package contact

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	contacterrors "github.com/piyushraj0718/payrollmanagement/internal/contact/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/events"
	"github.com/piyushraj0718/payrollmanagement/internal/messaging/kafka"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxMessageLength = 1000

var validate = validator.New()

type Service interface {
	Submit(ctx context.Context, req CreateContactMessageRequest) (ContactMessageResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	topic  string
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	topic string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("contact.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.service")
	}
	if topic == "" {
		topic = events.ContactMessageReceivedTopic
	}
	return &service{db: db, repo: repo, outbox: outbox, topic: topic, now: time.Now, logger: l}
}

func validateRequest(req CreateContactMessageRequest) (CreateContactMessageRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return req, contacterrors.ErrMissingFields
	}
	if err := validate.Var(req.Email, "email"); err != nil {
		return req, contacterrors.ErrInvalidEmail
	}
	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		return req, contacterrors.ErrMessageTooLong
	}
	return req, nil
}

// Submit stores the message and queues its notification event in the same
// transaction.
func (s *service) Submit(ctx context.Context, req CreateContactMessageRequest) (ContactMessageResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	req, err := validateRequest(req)
	if err != nil {
		return ContactMessageResponse{}, err
	}

	msg := &ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: s.now().UTC(),
	}

	payload, err := json.Marshal(events.ContactMessageReceivedEvent{
		EventType:  events.ContactMessageReceivedType,
		RequestID:  rid,
		MessageID:  msg.ID.String(),
		Name:       msg.Name,
		Email:      msg.Email,
		Message:    msg.Message,
		OccurredAt: msg.CreatedAt,
	})
	if err != nil {
		s.logger.Error("marshal contact event failed", zap.String("request_id", rid), zap.Error(err))
		return ContactMessageResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit contact begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ContactMessageResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, msg); err != nil {
		s.logger.Error("submit contact persist failed", zap.String("request_id", rid), zap.Error(err))
		return ContactMessageResponse{}, err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "contact_message",
		AggregateID:   msg.ID.String(),
		EventType:     events.ContactMessageReceivedType,
		Topic:         s.topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("submit contact outbox persist failed", zap.String("request_id", rid), zap.Error(err))
		return ContactMessageResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit contact commit failed", zap.String("request_id", rid), zap.Error(err))
		return ContactMessageResponse{}, err
	}

	s.logger.Info("contact message queued",
		zap.String("request_id", rid),
		zap.String("message_id", msg.ID.String()),
	)

	return ContactMessageResponse{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}, nil
}
