package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsEvent is a product event recorded for a user or the system.
type AnalyticsEvent struct {
	ID         uuid.UUID
	UserID     *uuid.UUID // Nil for system events.
	Name       string
	Properties map[string]any
	OccurredAt time.Time
}
