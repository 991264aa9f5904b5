package usecase

import "context"

// Health check outcomes.
const (
	HealthOK    = "ok"
	HealthError = "error"

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthCheck is the result of one dependency check.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthReport aggregates every check.
type HealthReport struct {
	Status string                 `json:"status"`
	Checks map[string]HealthCheck `json:"checks"`
}

// Healthy reports whether every check passed.
func (r *HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}

// HealthUsecase checks the process dependencies.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthReport
}
