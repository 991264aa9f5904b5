package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/usecase"
)

const healthPingTimeout = 3 * time.Second

type healthService struct {
	pinger repository.Pinger
	config *config.Config
	logger *slog.Logger
}

// NewHealthService creates the readiness check.
func NewHealthService(pinger repository.Pinger, cfg *config.Config, logger *slog.Logger) usecase.HealthUsecase {
	return &healthService{
		pinger: pinger,
		config: cfg,
		logger: logger,
	}
}

// Check pings the database and verifies the secrets the service cannot run
// without.
func (s *healthService) Check(ctx context.Context) *usecase.HealthReport {
	report := &usecase.HealthReport{
		Status: usecase.StatusHealthy,
		Checks: map[string]usecase.HealthCheck{
			"database":      s.checkDatabase(ctx),
			"configuration": s.checkConfiguration(),
		},
	}
	for name, check := range report.Checks {
		if check.Status != usecase.HealthOK {
			report.Status = usecase.StatusUnhealthy
			s.logger.WarnContext(ctx, "Health check failed",
				slog.String("check", name),
				slog.String("message", check.Message),
			)
		}
	}

	return report
}

func (s *healthService) checkDatabase(ctx context.Context) usecase.HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := s.pinger.Ping(ctx); err != nil {
		return usecase.HealthCheck{Status: usecase.HealthError, Message: "database unreachable"}
	}

	return usecase.HealthCheck{Status: usecase.HealthOK}
}

func (s *healthService) checkConfiguration() usecase.HealthCheck {
	var missing []string
	if s.config.LLM == nil || !configured(s.config.LLM.APIKey) {
		missing = append(missing, "llm.apiKey")
	}
	if !configured(s.config.SecretKey.Access) {
		missing = append(missing, "secretKey.access")
	}
	if len(missing) > 0 {
		return usecase.HealthCheck{Status: usecase.HealthError, Message: "missing " + strings.Join(missing, ", ")}
	}

	return usecase.HealthCheck{Status: usecase.HealthOK}
}

// configured rejects empty values and template placeholders such as "your_key".
func configured(value string) bool {
	value = strings.TrimSpace(value)

	return value != "" && !strings.HasPrefix(value, "your_")
}
