package notification

import (
	"context"
	"log/slog"

	"foundmoney/config"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastLimit is the largest token list FCM accepts per request.
const multicastLimit = 500

type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastClient
}

// NewFirebaseService creates the FCM-backed notification service, or a
// logging no-op when firebase is not configured.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		logger.Warn("firebase not configured, push notifications are logged only")

		return &logOnlyService{logger: logger}, nil
	}

	opts := make([]option.ClientOption, 0, 1)
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendMulticast sends msg to every token, chunked to the FCM request limit.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += multicastLimit {
		end := min(start+multicastLimit, len(tokens))
		chunk := tokens[start:end]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "push notification skipped",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return 0, 0, nil, nil
}
