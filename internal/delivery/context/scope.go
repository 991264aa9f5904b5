// Package context carries request-scoped values (request ID and logger)
// across the delivery, usecase and infra layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = echo.HeaderXRequestID

	echoKeyRequestID = "request_id"
)

// WithRequestScope stores requestID and a logger tagged with it.
func WithRequestScope(ctx context.Context, base *slog.Logger, requestID string) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, base.With(slog.String("request_id", requestID)))
}

// WithLogAttrs extends the scoped logger (or fallback when there is none).
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...any) context.Context {
	return WithLogger(ctx, GetLoggerOrDefault(ctx, fallback).With(attrs...))
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// SetRequestID records the request ID on the echo context as well, for code
// that only holds echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the ID of the current request, minting one when the
// request never passed through the request ID middleware.
func GetRequestID(c echo.Context) string {
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
