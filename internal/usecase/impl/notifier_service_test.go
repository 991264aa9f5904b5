package impl

import (
	"context"
	"errors"
	"testing"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
	mockRepo "foundmoney/internal/mocks/repository"
	mockSvc "foundmoney/internal/mocks/service"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notifierServiceFixtures struct {
	service usecase.NotifierUsecase
	devices *mockRepo.MockDeviceRepository
	push    *mockSvc.MockNotificationService
}

func createTestNotifierService(t *testing.T) notifierServiceFixtures {
	devices := mockRepo.NewMockDeviceRepository(t)
	push := mockSvc.NewMockNotificationService(t)

	return notifierServiceFixtures{
		service: NewNotifierService(devices, push, newDiscardLogger()),
		devices: devices,
		push:    push,
	}
}

func searchEvent(userID uuid.UUID, total int) *service.SearchCompletedEvent {
	return &service.SearchCompletedEvent{
		RequestID:      "req-1",
		UserID:         userID.String(),
		TotalFound:     total,
		EstimatedValue: 1234.4,
		CompletedAt:    fixedNow,
	}
}

func TestNotifierService_SendsAndPrunesTokens(t *testing.T) {
	ctx := context.Background()
	fx := createTestNotifierService(t)
	userID := uuid.New()

	fx.devices.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{FCMToken: "tok-1"}, {FCMToken: "tok-2"}}, nil)
	fx.push.EXPECT().
		SendMulticast(ctx, []string{"tok-1", "tok-2"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Body == "We found 3 opportunities worth ~$1234" && msg.Data["total_found"] == "3"
		})).
		Return(1, 1, []string{"tok-2"}, nil)
	fx.devices.EXPECT().
		DeactivateTokens(ctx, []string{"tok-2"}).
		Return(nil)

	err := fx.service.NotifySearchCompleted(ctx, searchEvent(userID, 3))
	require.NoError(t, err)
}

func TestNotifierService_NoDevices(t *testing.T) {
	ctx := context.Background()
	fx := createTestNotifierService(t)
	userID := uuid.New()

	fx.devices.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	err := fx.service.NotifySearchCompleted(ctx, searchEvent(userID, 1))
	require.NoError(t, err)
	fx.push.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifierService_Failures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("device lookup is retryable", func(t *testing.T) {
		fx := createTestNotifierService(t)
		fx.devices.EXPECT().
			FindActiveDevicesByUser(ctx, userID).
			Return(nil, errors.New("db down"))

		err := fx.service.NotifySearchCompleted(ctx, searchEvent(userID, 1))
		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("provider outage is retryable", func(t *testing.T) {
		fx := createTestNotifierService(t)
		fx.devices.EXPECT().
			FindActiveDevicesByUser(ctx, userID).
			Return([]*entity.UserDevice{{FCMToken: "t"}}, nil)
		fx.push.EXPECT().
			SendMulticast(ctx, mock.Anything, mock.Anything).
			Return(0, 0, nil, errors.New("503"))

		err := fx.service.NotifySearchCompleted(ctx, searchEvent(userID, 1))
		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("bad user id is permanent", func(t *testing.T) {
		fx := createTestNotifierService(t)
		event := searchEvent(userID, 1)
		event.UserID = "nobody"

		err := fx.service.NotifySearchCompleted(ctx, event)
		require.Error(t, err)
		assert.False(t, usecase.IsRetryable(err))
	})
}

func TestSearchCompletedMessage_Singular(t *testing.T) {
	msg := searchCompletedMessage(searchEvent(uuid.New(), 1))
	assert.Equal(t, "We found 1 opportunity worth ~$1234", msg.Body)
	assert.Equal(t, "search.completed", msg.Data["event_type"])
}
