package pubsub

import (
	"context"
	"log/slog"

	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePublisher connects to Cloud Pub/Sub and fails fast when the topic
// does not exist.
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s unavailable", topic)
	}

	logger.Info("[PubSub] Using Google publisher", slog.String("topic", topic))

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishSearchCompleted(ctx context.Context, event *service.SearchCompletedEvent) error {
	data, attrs, err := encodeSearchCompleted(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish search completed event")
	}

	p.logger.InfoContext(ctx, "[PubSub] Event published",
		slog.String("server_id", serverID),
		slog.String("user_id", event.UserID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
