// Package contextutil carries request scoped values from the HTTP layer into
// services without services depending on gin.
package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// RequestIDHeader is read from and echoed back on every response.
const RequestIDHeader = "X-Request-ID"

type contextKey int

const (
	requestIDKey contextKey = iota
	userIDKey
	organizationKey
	loggerKey
)

func lookup[T any](ctx context.Context, key contextKey) (T, bool) {
	var zero T
	if ctx == nil {
		return zero, false
	}
	v, ok := ctx.Value(key).(T)
	return v, ok
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	rid, _ := lookup[string](ctx, requestIDKey)
	return rid
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	uid, _ := lookup[string](ctx, userIDKey)
	return uid
}

func WithOrganization(ctx context.Context, org string) context.Context {
	return context.WithValue(ctx, organizationKey, org)
}

func GetOrganization(ctx context.Context) string {
	org, _ := lookup[string](ctx, organizationKey)
	return org
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger prefers the request logger, then fallback, then a no-op logger.
// The result is never nil.
func GetLogger(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := lookup[*zap.Logger](ctx, loggerKey); ok && l != nil {
		return l
	}
	if fallback != nil {
		return fallback
	}
	return zap.NewNop()
}

// Metadata is the tracing identity of one request.
type Metadata struct {
	RequestID    string
	UserID       string
	Organization string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID:    GetRequestID(ctx),
		UserID:       GetUserID(ctx),
		Organization: GetOrganization(ctx),
	}
}

// Fields renders the non-empty parts of m as zap fields.
func (m Metadata) Fields() []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if m.RequestID != "" {
		fields = append(fields, zap.String("request_id", m.RequestID))
	}
	if m.UserID != "" {
		fields = append(fields, zap.String("user_id", m.UserID))
	}
	if m.Organization != "" {
		fields = append(fields, zap.String("organization", m.Organization))
	}
	return fields
}

// Inject stores every non-empty part of m on ctx.
func (m Metadata) Inject(ctx context.Context) context.Context {
	if m.RequestID != "" {
		ctx = WithRequestID(ctx, m.RequestID)
	}
	if m.UserID != "" {
		ctx = WithUserID(ctx, m.UserID)
	}
	if m.Organization != "" {
		ctx = WithOrganization(ctx, m.Organization)
	}
	return ctx
}
