package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"foundmoney/config"
	"foundmoney/internal/domain/constants"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. Without a
// provider, search completions are only logged.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("[PubSub] No provider configured, events will be dropped")

		return disabledPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalPushPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// encodeSearchCompleted returns the JSON payload and the attributes
// subscribers filter on.
func encodeSearchCompleted(event *service.SearchCompletedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode search completed event")
	}

	attrs := map[string]string{
		constants.AttrEventType: constants.EventTypeSearchCompleted,
		constants.AttrUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attrs[constants.AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}

type disabledPublisher struct {
	logger *slog.Logger
}

func (p disabledPublisher) PublishSearchCompleted(ctx context.Context, event *service.SearchCompletedEvent) error {
	p.logger.DebugContext(ctx, "[PubSub] Publishing disabled, dropping event",
		slog.String("user_id", event.UserID),
		slog.Int("total_found", event.TotalFound),
	)

	return nil
}

func (disabledPublisher) Close() error { return nil }

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
