package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Outbox row lifecycle: pending -> sent, or pending -> failed (retried) ->
// dead once the retry budget is spent. Dead rows are left for inspection.
const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	OutboxStatusDead    = "dead"
)

var ErrInvalidOutboxEvent = errors.New("invalid outbox event")

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string, maxRetries int) error
}

const (
	insertOutboxSQL = `INSERT INTO outbox_events
	(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	// due rows only, oldest first; next_retry_at falls back to created_at
	// so fresh rows scan into a non-zero time
	selectDueOutboxSQL = `SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id::text,
	event_type, topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2) AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at
LIMIT $3`

	markSentSQL = `UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

	// backoff grows 15s per attempt and stops growing after ten attempts
	markFailedSQL = `UPDATE outbox_events
SET status = CASE WHEN retry_count + 1 >= $4 THEN $5 ELSE $2 END,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + LEAST(retry_count + 1, 10) * INTERVAL '15 seconds',
	updated_at = NOW()
WHERE id = $1`
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

// WithTx binds writes to tx so the outbox row commits with the business row.
func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) exec() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, e OutboxEvent) error {
	if err := ValidateOutboxEvent(e); err != nil {
		return err
	}
	_, err := r.exec().ExecContext(ctx, insertOutboxSQL,
		e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, selectDueOutboxSQL, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, fmt.Errorf("query due outbox events: %w", err)
	}
	defer rows.Close()

	var due []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		err := rows.Scan(&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt)
		if err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		due = append(due, e)
	}
	return due, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.exec().ExecContext(ctx, markSentSQL, id, OutboxStatusSent)
	return err
}

// MarkFailed records the failure reason and schedules the next attempt. The
// row turns dead when this failure uses up maxRetries.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string, maxRetries int) error {
	_, err := r.exec().ExecContext(ctx, markFailedSQL, id, OutboxStatusFailed, reason, maxRetries, OutboxStatusDead)
	return err
}

// ValidateOutboxEvent rejects rows the relay could never publish.
func ValidateOutboxEvent(e OutboxEvent) error {
	switch {
	case e.ID == "":
		return fmt.Errorf("%w: id is required", ErrInvalidOutboxEvent)
	case e.Topic == "":
		return fmt.Errorf("%w: topic is required", ErrInvalidOutboxEvent)
	case len(e.Payload) == 0:
		return fmt.Errorf("%w: payload is required", ErrInvalidOutboxEvent)
	}
	switch e.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed, OutboxStatusDead:
		return nil
	}
	return fmt.Errorf("%w: unknown status %q", ErrInvalidOutboxEvent, e.Status)
}
