package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/lifecycle"
	"foundmoney/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica connections and ties them to the fx
// lifecycle: pinged on start, closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement writes go through TransactionManager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{logger: params.Logger, stats: sqlDB.Stats}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			go monitor.run(monitorCtx, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolMonitor reports connection pool contention. Searches fan out across
// sources and persist in bursts, so waits here show up before timeouts do.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	last   sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	m.last = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check compares the pool against the previous sample and logs only when new
// callers had to wait for a connection.
func (m *poolMonitor) check(ctx context.Context) {
	cur := m.stats()
	prev := m.last
	m.last = cur

	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "[DB] Connection pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
