package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"foundmoney/internal/domain/constants"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
)

const searchCompletedTitle = "Money found!"

type notifierService struct {
	deviceRepo repository.DeviceRepository
	notifier   service.NotificationService
	logger     *slog.Logger
}

// NewNotifierService creates the push use case run by the notifier worker.
func NewNotifierService(deviceRepo repository.DeviceRepository, notifier service.NotificationService, logger *slog.Logger) usecase.NotifierUsecase {
	return &notifierService{
		deviceRepo: deviceRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// NotifySearchCompleted pushes the search summary to the user's active
// devices. Store and provider outages are retryable; malformed events are not.
func (s *notifierService) NotifySearchCompleted(ctx context.Context, event *service.SearchCompletedEvent) error {
	if event == nil {
		return errors.New("empty search completed event")
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(err, "invalid user id %q", event.UserID)
	}
	if event.TotalFound <= 0 {
		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "failed to load devices"))
	}
	if len(devices) == 0 {
		s.logger.DebugContext(ctx, "No active devices for user", slog.String("user_id", event.UserID))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	success, failure, invalid, err := s.notifier.SendMulticast(ctx, tokens, searchCompletedMessage(event))
	if err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "failed to send push notification"))
	}

	s.logger.InfoContext(ctx, "Search completed push sent",
		slog.String("user_id", event.UserID),
		slog.String("request_id", event.RequestID),
		slog.Int("success", success),
		slog.Int("failure", failure),
	)

	if len(invalid) > 0 {
		if err := s.deviceRepo.DeactivateTokens(ctx, invalid); err != nil {
			s.logger.WarnContext(ctx, "Failed to deactivate unregistered tokens",
				slog.Int("count", len(invalid)),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func searchCompletedMessage(event *service.SearchCompletedEvent) *service.PushMessage {
	noun := "opportunities"
	if event.TotalFound == 1 {
		noun = "opportunity"
	}

	return &service.PushMessage{
		Title: searchCompletedTitle,
		Body:  fmt.Sprintf("We found %d %s worth ~$%.0f", event.TotalFound, noun, event.EstimatedValue),
		Data: map[string]string{
			constants.AttrEventType: constants.EventTypeSearchCompleted,
			"total_found":           strconv.Itoa(event.TotalFound),
			"estimated_value":       strconv.FormatFloat(event.EstimatedValue, 'f', 2, 64),
		},
	}
}
