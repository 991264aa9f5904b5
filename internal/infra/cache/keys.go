package cache

import "time"

// DefaultScoreTTL applies when the score cache has no configured TTL.
const DefaultScoreTTL = 24 * time.Hour

// ScoreKey namespaces a verdict key in the shared store.
func ScoreKey(key string) string {
	return "score:" + key
}

// RateLimitKey identifies one caller's token bucket.
func RateLimitKey(identity string) string {
	return "ratelimit:" + identity
}
