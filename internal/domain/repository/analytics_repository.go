package repository

import (
	"context"

	"foundmoney/internal/domain/entity"
)

// AnalyticsRepository stores product events.
type AnalyticsRepository interface {
	// CreateBatch inserts all events in one statement.
	CreateBatch(ctx context.Context, events []*entity.AnalyticsEvent) error
}
