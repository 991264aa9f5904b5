package property

import (
	"log/slog"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/constants"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/infra/httpclient"
)

const defaultRegistryTimeout = 10 * time.Second

// NewRegistryFromConfig picks the registry backend. Without configuration
// the built-in sample records are served.
func NewRegistryFromConfig(cfg *config.Config, logger *slog.Logger) (service.PropertyRegistry, error) {
	registryCfg := cfg.PropertyRegistry
	if registryCfg == nil || registryCfg.Provider == "" || registryCfg.Provider == constants.RegistryProviderSample {
		logger.Info("Using sample property registry")

		return NewSampleRegistry(), nil
	}

	switch registryCfg.Provider {
	case constants.RegistryProviderHTTP:
		if registryCfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http property registry")
		}
		timeout := registryCfg.Timeout
		if timeout <= 0 {
			timeout = defaultRegistryTimeout
		}
		logger.Info("Using HTTP property registry", slog.String("endpoint", registryCfg.Endpoint))

		return NewHTTPRegistry(registryCfg.Endpoint, httpclient.New(timeout, logger)), nil
	default:
		return nil, errors.Errorf("unknown property registry provider: %s", registryCfg.Provider)
	}
}

// NewFromConfig builds the property source over the configured registry.
func NewFromConfig(cfg *config.Config, registry service.PropertyRegistry, logger *slog.Logger) service.PropertySource {
	var (
		defaultStates []string
		fanout        int
	)
	if cfg.Search != nil {
		defaultStates = cfg.Search.DefaultStates
		fanout = cfg.Search.JurisdictionFanout
	}

	return NewAdapter(registry, defaultStates, fanout, logger)
}
