package usecase

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a push device.
type RegisterDeviceInput struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for push device management.
// Cobblers register devices to receive new order alerts.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, userID uuid.UUID, input RegisterDeviceInput) (*entity.UserDevice, error)
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error
}
