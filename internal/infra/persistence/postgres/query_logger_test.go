package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"foundmoney/config"
	deliverycontext "foundmoney/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestQueryLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("boom"), want: "Query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound},
		{name: "slow", elapsed: time.Second, want: "Slow query"},
		{name: "fast query hidden outside debug"},
		{name: "fast query shown in debug", debug: true, want: "[DB] Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newQueryLogger(bufferLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestQueryLogger_UsesContextLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	l := newQueryLogger(bufferLogger(&fallback), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), bufferLogger(&scoped).With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE x", 0 }, errors.New("deadlock"))

	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestPoolMonitor_Check(t *testing.T) {
	var buf bytes.Buffer
	samples := []sql.DBStats{
		{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
		{WaitCount: 7, WaitDuration: 210 * time.Millisecond},
	}
	next := 0
	m := &poolMonitor{logger: bufferLogger(&buf), stats: func() sql.DBStats {
		s := samples[next]
		next++

		return s
	}}
	m.last = sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	m.check(context.Background())
	assert.Empty(t, buf.String(), "no new waits")

	m.check(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=4")
	assert.Contains(t, buf.String(), "avg_wait=50ms")
}
