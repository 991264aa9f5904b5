package postgres

import (
	"context"

	"foundmoney/internal/domain/repository"
	"foundmoney/internal/errors"

	"gorm.io/gorm"
)

type dbPinger struct {
	db *gorm.DB
}

// NewPinger exposes the primary connection pool to health checks.
func NewPinger(db *gorm.DB) repository.Pinger {
	return &dbPinger{db: db}
}

func (p *dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB.PingContext(ctx)
}
