package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"foundmoney/config"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	mockRepo "foundmoney/internal/mocks/repository"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_Track(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockAnalyticsRepository(t)
	userID := uuid.New()
	future := fixedNow.Add(time.Hour)
	past := fixedNow.Add(-time.Hour)

	repo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(events []*entity.AnalyticsEvent) bool {
			return len(events) == 2 &&
				events[0].OccurredAt.Equal(past) &&
				events[1].OccurredAt.Equal(fixedNow) &&
				events[0].Properties["screen"] == "home" &&
				events[0].Properties["batch"] == true &&
				*events[1].UserID == userID
		})).
		Return(nil)

	svc := NewAnalyticsService(repo).(*analyticsService)
	svc.now = func() time.Time { return fixedNow }

	count, err := svc.Track(ctx, userID, []*usecase.TrackEvent{
		{Name: "screen_viewed", Properties: map[string]any{"screen": "home"}, Timestamp: &past},
		{Name: "search_started", Timestamp: &future},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAnalyticsService_Track_BatchLimits(t *testing.T) {
	svc := NewAnalyticsService(mockRepo.NewMockAnalyticsRepository(t))

	_, err := svc.Track(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	events := make([]*usecase.TrackEvent, usecase.MaxAnalyticsBatch+1)
	for i := range events {
		events[i] = &usecase.TrackEvent{Name: "e"}
	}
	_, err = svc.Track(context.Background(), uuid.New(), events)
	assert.ErrorIs(t, err, domainerrors.ErrAnalyticsBatchTooLarge)
}

func TestHealthService_Check(t *testing.T) {
	healthy := &config.Config{LLM: &config.LLMConfig{APIKey: "sk-live"}}
	healthy.SecretKey.Access = "jwt-secret"

	placeholder := &config.Config{LLM: &config.LLMConfig{APIKey: "your_api_key"}}
	placeholder.SecretKey.Access = "jwt-secret"

	tests := []struct {
		name       string
		pingErr    error
		cfg        *config.Config
		wantStatus string
		wantFailed []string
	}{
		{name: "all ok", cfg: healthy, wantStatus: usecase.StatusHealthy},
		{name: "database down", pingErr: errors.New("refused"), cfg: healthy, wantStatus: usecase.StatusUnhealthy, wantFailed: []string{"database"}},
		{name: "placeholder key", cfg: placeholder, wantStatus: usecase.StatusUnhealthy, wantFailed: []string{"configuration"}},
		{name: "nothing configured", cfg: &config.Config{}, wantStatus: usecase.StatusUnhealthy, wantFailed: []string{"configuration"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := mockRepo.NewMockPinger(t)
			pinger.EXPECT().
				Ping(mock.Anything).
				Return(tt.pingErr)

			report := NewHealthService(pinger, tt.cfg, newDiscardLogger()).Check(context.Background())

			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Len(t, report.Checks, 2)
			for _, name := range tt.wantFailed {
				assert.Equal(t, usecase.HealthError, report.Checks[name].Status, name)
			}
		})
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: " token ", DeviceID: "device-1", Platform: "IOS"}

	t.Run("normalizes and upserts", func(t *testing.T) {
		repo := mockRepo.NewMockDeviceRepository(t)
		repo.EXPECT().
			UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
				return d.FCMToken == "token" && d.Platform == "ios" && d.IsActive && d.UserID == userID
			})).
			Return(nil)

		device, err := NewDeviceService(repo, newDiscardLogger()).RegisterDevice(ctx, userID, info)
		require.NoError(t, err)
		assert.Equal(t, "device-1", device.DeviceID)
	})

	t.Run("unknown profile", func(t *testing.T) {
		repo := mockRepo.NewMockDeviceRepository(t)
		repo.EXPECT().
			UpsertDevice(ctx, mock.Anything).
			Return(repository.ErrProfileNotFound)

		_, err := NewDeviceService(repo, newDiscardLogger()).RegisterDevice(ctx, userID, info)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mockRepo.NewMockDeviceRepository(t)
		repo.EXPECT().
			UpsertDevice(ctx, mock.Anything).
			Return(errors.New("timeout"))

		_, err := NewDeviceService(repo, newDiscardLogger()).RegisterDevice(ctx, userID, info)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceRegistrationFailed)
	})
}
