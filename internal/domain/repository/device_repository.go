package repository

import (
	"context"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push-device persistence.
type DeviceRepository interface {
	// UpsertDevice registers a device, refreshing the token when the
	// (UserID, DeviceID) pair already exists.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateTokens marks devices holding any of the given FCM tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error
}
