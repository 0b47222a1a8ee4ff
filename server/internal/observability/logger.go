package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	// LogFieldRequestID is the field name for request ID.
	LogFieldRequestID = "request_id"
	// LogFieldUserID is the field name for user ID.
	LogFieldUserID = "user_id"
	// LogFieldChannelID is the field name for channel ID.
	LogFieldChannelID = "channel_id"
	// LogFieldDuration is the field name for duration in milliseconds.
	LogFieldDuration = "duration_ms"
	// LogFieldErrorCode is the field name for error code.
	LogFieldErrorCode = "error_code"
	// LogFieldOperation is the field name for the core operation invoked.
	LogFieldOperation = "operation"
)

// RequestContext carries structured-logging state for a single request.
type RequestContext struct {
	RequestID string
	UserID    string
	Operation string
	StartTime time.Time
	Logger    *slog.Logger
}

// NewRequestContext creates a new request context with a generated request ID.
func NewRequestContext(logger *slog.Logger, operation, userID string) *RequestContext {
	return &RequestContext{
		RequestID: uuid.New().String(),
		UserID:    userID,
		Operation: operation,
		StartTime: time.Now(),
		Logger:    logger,
	}
}

func (r *RequestContext) baseAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(LogFieldRequestID, r.RequestID),
		slog.String(LogFieldOperation, r.Operation),
	}
	if r.UserID != "" {
		attrs = append(attrs, slog.String(LogFieldUserID, r.UserID))
	}
	return attrs
}

func (r *RequestContext) log(level slog.Level, msg string, attrs ...slog.Attr) {
	combined := append(r.baseAttrs(), attrs...)
	r.Logger.LogAttrs(context.Background(), level, msg, combined...)
}

// Info logs an info message.
func (r *RequestContext) Info(msg string, attrs ...slog.Attr) {
	r.log(slog.LevelInfo, msg, attrs...)
}

// Debug logs a debug message.
func (r *RequestContext) Debug(msg string, attrs ...slog.Attr) {
	r.log(slog.LevelDebug, msg, attrs...)
}

// Warn logs a warning message.
func (r *RequestContext) Warn(msg string, attrs ...slog.Attr) {
	r.log(slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func (r *RequestContext) Error(msg string, attrs ...slog.Attr) {
	r.log(slog.LevelError, msg, attrs...)
}

// Done logs request completion with the elapsed duration.
func (r *RequestContext) Done(msg string, attrs ...slog.Attr) {
	elapsed := time.Since(r.StartTime).Milliseconds()
	attrs = append(attrs, slog.Int64(LogFieldDuration, elapsed))
	r.log(slog.LevelInfo, msg, attrs...)
}
