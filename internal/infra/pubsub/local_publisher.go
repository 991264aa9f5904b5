package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	localPushTimeout      = 30 * time.Second
	localPushSubscription = "projects/local/subscriptions/search-completed-push"
)

// PushEnvelope is the body Pub/Sub sends to push subscriptions.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localPushPublisher posts push envelopes straight to the notifier, standing
// in for a push subscription during development.
type localPushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalPushPublisher delivers events synchronously to endpoint.
func NewLocalPushPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	logger.Info("[PubSub] Using local push publisher", slog.String("endpoint", endpoint))

	return &localPushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localPushPublisher) PublishSearchCompleted(ctx context.Context, event *service.SearchCompletedEvent) error {
	data, attrs, err := encodeSearchCompleted(event)
	if err != nil {
		return err
	}

	var envelope PushEnvelope
	envelope.Subscription = localPushSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attrs
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push to local endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("local endpoint answered %d", resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "[PubSub] Event pushed",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *localPushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
