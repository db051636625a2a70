package impl

import (
	"context"
	"log/slog"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a push device. Re-registering a known device
// refreshes its FCM token instead of failing.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if input.FCMToken == "" || input.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm token and device id are required")
	}
	if input.Platform != "ios" && input.Platform != "android" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform must be ios or android")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}

	err := srv.deviceRepo.CreateDevice(ctx, device)
	if err == nil {
		srv.log(ctx).Info("Device registered",
			slog.Any("userID", userID), slog.String("platform", input.Platform))

		return device, nil
	}
	if !errors.Is(err, repository.ErrDuplicateDevice) {
		return nil, errors.Wrap(err, "failed to register device")
	}

	// Same device registering again: refresh the token.
	existing, err := srv.findUserDevice(ctx, userID, input.DeviceID)
	if err != nil {
		return nil, err
	}
	if err := srv.deviceRepo.UpdateFCMToken(ctx, existing.ID, input.FCMToken); err != nil {
		return nil, errors.Wrap(err, "failed to refresh device token")
	}
	existing.FCMToken = input.FCMToken

	srv.log(ctx).Debug("Device token refreshed", slog.Any("deviceID", existing.ID))

	return existing, nil
}

// ListDevices returns the user's active push devices.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// RemoveDevice unregisters one of the user's own devices.
func (srv *deviceService) RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("no device with this id")
		}

		return errors.Wrap(err, "failed to find device")
	}
	if device.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("device belongs to another user")
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	srv.log(ctx).Info("Device removed", slog.Any("deviceID", deviceID))

	return nil
}

func (srv *deviceService) findUserDevice(ctx context.Context, userID uuid.UUID, clientDeviceID string) (*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	for _, device := range devices {
		if device.DeviceID == clientDeviceID {
			return device, nil
		}
	}

	return nil, domainerrors.ErrConflict.WrapMessage("device id registered by another account")
}
