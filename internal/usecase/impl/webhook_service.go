package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "foundmoney/internal/delivery/context"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/errors"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
)

// subscriptionChange is what one billing event does to a profile.
type subscriptionChange struct {
	update    repository.SubscriptionUpdate
	eventName string
}

type webhookService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewWebhookService creates the billing webhook use case.
func NewWebhookService(txManager repository.TransactionManager, logger *slog.Logger) usecase.WebhookUsecase {
	return &webhookService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleSubscriptionEvent updates the profile and records the matching
// analytics event in one transaction.
func (s *webhookService) HandleSubscriptionEvent(ctx context.Context, event *usecase.SubscriptionEvent) (*usecase.WebhookResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	result := &usecase.WebhookResult{Event: event.Type}

	change, ok := subscriptionChangeFor(event)
	if !ok {
		logger.InfoContext(ctx, "Ignoring unhandled subscription event", slog.String("type", event.Type))

		return result, nil
	}

	// Anonymous billing ids never map to a profile.
	userID, err := uuid.Parse(event.AppUserID)
	if err != nil {
		logger.WarnContext(ctx, "Subscription event for unknown user id",
			slog.String("type", event.Type),
			slog.String("app_user_id", event.AppUserID),
		)

		return result, nil
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewProfileRepository().UpdateSubscription(ctx, userID, change.update); err != nil {
			return err
		}

		return factory.NewAnalyticsRepository().CreateBatch(ctx, []*entity.AnalyticsEvent{{
			UserID:     &userID,
			Name:       change.eventName,
			Properties: subscriptionEventProperties(event, change.update),
			OccurredAt: s.now(),
		}})
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			logger.WarnContext(ctx, "Subscription event for missing profile", slog.String("user_id", userID.String()))

			return result, nil
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to apply subscription event")
	}

	logger.InfoContext(ctx, "Subscription event applied",
		slog.String("type", event.Type),
		slog.String("user_id", userID.String()),
	)
	result.Handled = true

	return result, nil
}

// subscriptionChangeFor maps an event type to its profile change. Unknown
// types report false.
func subscriptionChangeFor(event *usecase.SubscriptionEvent) (subscriptionChange, bool) {
	switch event.Type {
	case usecase.EventInitialPurchase, usecase.EventRenewal:
		name := "subscription_renewed"
		if event.Type == usecase.EventInitialPurchase {
			name = "subscription_started"
		}

		return subscriptionChange{
			update: repository.SubscriptionUpdate{
				Status:    entity.SubscriptionActive,
				Tier:      tierForProduct(event.ProductID),
				ExpiresAt: msTime(event.ExpirationAt),
			},
			eventName: name,
		}, true
	case usecase.EventCancellation:
		return subscriptionChange{
			update:    repository.SubscriptionUpdate{Status: entity.SubscriptionCancelled, ExpiresAt: msTime(event.ExpirationAt)},
			eventName: "subscription_cancelled",
		}, true
	case usecase.EventExpiration:
		return subscriptionChange{
			update:    repository.SubscriptionUpdate{Status: entity.SubscriptionExpired, ExpiresAt: msTime(event.ExpirationAt)},
			eventName: "subscription_expired",
		}, true
	case usecase.EventBillingIssue:
		return subscriptionChange{
			update:    repository.SubscriptionUpdate{Status: entity.SubscriptionBillingIssue, ExpiresAt: msTime(event.ExpirationAt)},
			eventName: "billing_issue",
		}, true
	case usecase.EventProductChange:
		product := event.NewProductID
		if product == "" {
			product = event.ProductID
		}

		return subscriptionChange{
			update:    repository.SubscriptionUpdate{Tier: tierForProduct(product)},
			eventName: "subscription_changed",
		}, true
	default:
		return subscriptionChange{}, false
	}
}

func tierForProduct(productID string) entity.SubscriptionTier {
	product := strings.ToLower(productID)
	if strings.Contains(product, "annual") || strings.Contains(product, "yearly") {
		return entity.TierYearly
	}

	return entity.TierMonthly
}

func msTime(ms int64) *time.Time {
	if ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()

	return &t
}

func subscriptionEventProperties(event *usecase.SubscriptionEvent, update repository.SubscriptionUpdate) map[string]any {
	props := map[string]any{
		"product_id": event.ProductID,
	}
	if update.Tier != "" {
		props["tier"] = string(update.Tier)
	}
	if event.NewProductID != "" {
		props["new_product_id"] = event.NewProductID
	}
	if update.ExpiresAt != nil {
		props["expiration_date"] = update.ExpiresAt.Format(time.RFC3339)
	}
	if event.Store != "" {
		props["store"] = event.Store
	}
	if event.Environment != "" {
		props["environment"] = event.Environment
	}

	return props
}
