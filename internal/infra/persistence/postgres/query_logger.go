package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foundmoney/config"
	deliverycontext "foundmoney/internal/delivery/context"
	"foundmoney/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends GORM output to the logger carried by the query context,
// so SQL lines share the request_id of the call that issued them.
type queryLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

func newQueryLogger(fallback *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{fallback: fallback, level: level, slow: slowQueryThreshold}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, atLeast gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	logger := l.loggerFor(ctx)
	if l.level < atLeast || logger == nil {
		return
	}

	logger.LogAttrs(ctx, level, "[DB] "+fmt.Sprintf(msg, args...))
}

// Trace logs failed queries at error, slow ones at warn and everything else
// only when the level is Info.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	logger := l.loggerFor(ctx)
	if logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error
	slow := l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn
	if !failed && !slow && l.level < gormlogger.Info {
		return
	}

	query, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", query),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case failed:
		logger.LogAttrs(ctx, slog.LevelError, "[DB] Query failed", append(attrs, slog.Any("error", err))...)
	case slow:
		logger.LogAttrs(ctx, slog.LevelWarn, "[DB] Slow query", append(attrs, slog.Duration("threshold", l.slow))...)
	default:
		logger.LogAttrs(ctx, slog.LevelInfo, "[DB] Query", attrs...)
	}
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}
