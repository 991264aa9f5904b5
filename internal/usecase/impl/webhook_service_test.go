package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	mockRepo "foundmoney/internal/mocks/repository"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookServiceFixtures struct {
	service   *webhookService
	profiles  *mockRepo.MockProfileRepository
	analytics *mockRepo.MockAnalyticsRepository
}

// createTestWebhookService runs every transaction against the fixture's
// repositories.
func createTestWebhookService(t *testing.T) webhookServiceFixtures {
	profiles := mockRepo.NewMockProfileRepository(t)
	analytics := mockRepo.NewMockAnalyticsRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(profiles).Maybe()
	factory.EXPECT().NewAnalyticsRepository().Return(analytics).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	svc := NewWebhookService(txManager, newDiscardLogger()).(*webhookService)
	svc.now = func() time.Time { return fixedNow }

	return webhookServiceFixtures{service: svc, profiles: profiles, analytics: analytics}
}

func TestWebhookService_HandleSubscriptionEvent(t *testing.T) {
	userID := uuid.New()
	expiry := time.Date(2027, 10, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		event      *usecase.SubscriptionEvent
		wantUpdate repository.SubscriptionUpdate
		wantEvent  string
	}{
		{
			name:  "initial yearly purchase",
			event: &usecase.SubscriptionEvent{Type: usecase.EventInitialPurchase, AppUserID: userID.String(), ProductID: "foundmoney_annual", ExpirationAt: expiry.UnixMilli()},
			wantUpdate: repository.SubscriptionUpdate{
				Status: entity.SubscriptionActive, Tier: entity.TierYearly, ExpiresAt: &expiry,
			},
			wantEvent: "subscription_started",
		},
		{
			name:       "monthly renewal",
			event:      &usecase.SubscriptionEvent{Type: usecase.EventRenewal, AppUserID: userID.String(), ProductID: "foundmoney_monthly"},
			wantUpdate: repository.SubscriptionUpdate{Status: entity.SubscriptionActive, Tier: entity.TierMonthly},
			wantEvent:  "subscription_renewed",
		},
		{
			name:       "cancellation",
			event:      &usecase.SubscriptionEvent{Type: usecase.EventCancellation, AppUserID: userID.String()},
			wantUpdate: repository.SubscriptionUpdate{Status: entity.SubscriptionCancelled},
			wantEvent:  "subscription_cancelled",
		},
		{
			name:       "expiration",
			event:      &usecase.SubscriptionEvent{Type: usecase.EventExpiration, AppUserID: userID.String()},
			wantUpdate: repository.SubscriptionUpdate{Status: entity.SubscriptionExpired},
			wantEvent:  "subscription_expired",
		},
		{
			name:       "billing issue",
			event:      &usecase.SubscriptionEvent{Type: usecase.EventBillingIssue, AppUserID: userID.String()},
			wantUpdate: repository.SubscriptionUpdate{Status: entity.SubscriptionBillingIssue},
			wantEvent:  "billing_issue",
		},
		{
			name:       "product change",
			event:      &usecase.SubscriptionEvent{Type: usecase.EventProductChange, AppUserID: userID.String(), ProductID: "monthly", NewProductID: "Yearly_Pro"},
			wantUpdate: repository.SubscriptionUpdate{Tier: entity.TierYearly},
			wantEvent:  "subscription_changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWebhookService(t)
			fx.profiles.EXPECT().
				UpdateSubscription(mock.Anything, userID, tt.wantUpdate).
				Return(nil)
			fx.analytics.EXPECT().
				CreateBatch(mock.Anything, mock.MatchedBy(func(events []*entity.AnalyticsEvent) bool {
					return len(events) == 1 && events[0].Name == tt.wantEvent && *events[0].UserID == userID
				})).
				Return(nil)

			result, err := fx.service.HandleSubscriptionEvent(context.Background(), tt.event)
			require.NoError(t, err)

			assert.True(t, result.Handled)
			assert.Equal(t, tt.event.Type, result.Event)
		})
	}
}

func TestWebhookService_IgnoredEvents(t *testing.T) {
	tests := []struct {
		name      string
		event     *usecase.SubscriptionEvent
		setupRepo func(p *mockRepo.MockProfileRepository)
	}{
		{
			name:  "unknown type",
			event: &usecase.SubscriptionEvent{Type: "TRANSFER", AppUserID: uuid.NewString()},
		},
		{
			name:  "anonymous app user",
			event: &usecase.SubscriptionEvent{Type: usecase.EventRenewal, AppUserID: "$RCAnonymousID:abc"},
		},
		{
			name:  "profile missing",
			event: &usecase.SubscriptionEvent{Type: usecase.EventExpiration, AppUserID: uuid.NewString()},
			setupRepo: func(p *mockRepo.MockProfileRepository) {
				p.EXPECT().
					UpdateSubscription(mock.Anything, mock.Anything, mock.Anything).
					Return(repository.ErrProfileNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWebhookService(t)
			if tt.setupRepo != nil {
				tt.setupRepo(fx.profiles)
			}

			result, err := fx.service.HandleSubscriptionEvent(context.Background(), tt.event)
			require.NoError(t, err)

			assert.False(t, result.Handled)
			fx.analytics.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
		})
	}
}

func TestWebhookService_StoreFailure(t *testing.T) {
	fx := createTestWebhookService(t)
	fx.profiles.EXPECT().
		UpdateSubscription(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	fx.analytics.EXPECT().
		CreateBatch(mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	_, err := fx.service.HandleSubscriptionEvent(context.Background(), &usecase.SubscriptionEvent{
		Type:      usecase.EventCancellation,
		AppUserID: uuid.NewString(),
	})
	assert.Error(t, err)
}

func TestTierForProduct(t *testing.T) {
	assert.Equal(t, entity.TierYearly, tierForProduct("com.foundmoney.Annual"))
	assert.Equal(t, entity.TierYearly, tierForProduct("pro_yearly"))
	assert.Equal(t, entity.TierMonthly, tierForProduct("pro_month"))
	assert.Equal(t, entity.TierMonthly, tierForProduct(""))
}
