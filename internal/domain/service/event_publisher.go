package service

import (
	"context"
	"time"
)

// SearchCompletedEvent is published after an aggregation run found something.
type SearchCompletedEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	UserID         string    `json:"user_id"`
	TotalFound     int       `json:"total_found"`
	EstimatedValue float64   `json:"estimated_value"`
	CompletedAt    time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSearchCompleted publishes a search summary for async push delivery
	PublishSearchCompleted(ctx context.Context, event *SearchCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
