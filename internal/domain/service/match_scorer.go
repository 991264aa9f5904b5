package service

import (
	"context"
	"time"

	"foundmoney/internal/domain/entity"
)

// MatchScorer rates how likely a candidate applies to a user.
type MatchScorer interface {
	// Score returns a 0-100 score with reasons. Implementations may try more
	// than one model before giving up.
	Score(ctx context.Context, profile *entity.UserProfile, candidate *entity.OpportunityCandidate) (*entity.MatchResult, error)
}

// ScoreCache memoizes scorer verdicts by content-addressed key.
type ScoreCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, key string) (result *entity.MatchResult, ok bool, err error)

	Set(ctx context.Context, key string, result *entity.MatchResult, ttl time.Duration) error
}
