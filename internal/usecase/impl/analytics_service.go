package impl

import (
	"context"
	"fmt"
	"maps"
	"time"

	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
)

type analyticsService struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsService creates the product event use case.
func NewAnalyticsService(repo repository.AnalyticsRepository) usecase.AnalyticsUsecase {
	return &analyticsService{
		repo: repo,
		now:  time.Now,
	}
}

// Track stores a batch of events for the user in one insert.
func (s *analyticsService) Track(ctx context.Context, userID uuid.UUID, events []*usecase.TrackEvent) (int, error) {
	if len(events) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("at least one event is required")
	}
	if len(events) > usecase.MaxAnalyticsBatch {
		return 0, domainerrors.ErrAnalyticsBatchTooLarge.WithDetails(
			fmt.Sprintf("%d events, at most %d allowed", len(events), usecase.MaxAnalyticsBatch))
	}

	now := s.now()
	records := make([]*entity.AnalyticsEvent, 0, len(events))
	for _, event := range events {
		properties := maps.Clone(event.Properties)
		if properties == nil {
			properties = make(map[string]any, 2)
		}
		properties["source"] = "backend"
		if len(events) > 1 {
			properties["batch"] = true
		}

		occurredAt := now
		if event.Timestamp != nil && !event.Timestamp.IsZero() && !event.Timestamp.After(now) {
			occurredAt = *event.Timestamp
		}

		records = append(records, &entity.AnalyticsEvent{
			UserID:     &userID,
			Name:       event.Name,
			Properties: properties,
			OccurredAt: occurredAt,
		})
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to record analytics events")
	}

	return len(records), nil
}
