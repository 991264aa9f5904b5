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

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one.
// The repository keeps one row per (user, device ID), so re-registering is safe.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	now := s.now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  strings.TrimSpace(deviceInfo.FCMToken),
		DeviceID:  strings.TrimSpace(deviceInfo.DeviceID),
		Platform:  strings.ToLower(deviceInfo.Platform),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).ErrorContext(ctx, "Failed to register device",
			slog.String("user_id", userID.String()),
			slog.String("device_id", device.DeviceID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrDeviceRegistrationFailed.WrapMessage(err.Error())
	}

	return device, nil
}
