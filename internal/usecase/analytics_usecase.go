package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MaxAnalyticsBatch is the largest batch accepted by Track.
const MaxAnalyticsBatch = 50

// TrackEvent is one client-reported product event.
type TrackEvent struct {
	Name       string         `json:"event" validate:"required,max=100"`
	Properties map[string]any `json:"properties,omitempty"`
	Timestamp  *time.Time     `json:"timestamp,omitempty"`
}

// AnalyticsUsecase records product events.
type AnalyticsUsecase interface {
	// Track stores the events and returns how many were recorded.
	Track(ctx context.Context, userID uuid.UUID, events []*TrackEvent) (int, error)
}
