package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	mockRepo "cordonnier/internal/mocks/repository"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     logger,
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-1",
		DeviceID: "iphone-abc",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			device.ID = uuid.New()
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_DuplicateRefreshesToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "fcm-token-stale",
		DeviceID: "iphone-abc",
		Platform: "ios",
		IsActive: true,
	}

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrDuplicateDevice)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, existing.ID, "fcm-token-fresh").
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-fresh",
		DeviceID: "iphone-abc",
		Platform: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "fcm-token-fresh", device.FCMToken)
}

func TestDeviceService_RegisterDevice_DeviceIDTakenByAnotherAccount(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrDuplicateDevice)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-1",
		DeviceID: "iphone-abc",
		Platform: "ios",
	})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), usecase.RegisterDeviceInput{
		DeviceID: "iphone-abc",
		Platform: "ios",
	})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_RegisterDevice_UnknownPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-1",
		DeviceID: "blackberry-1",
		Platform: "blackberry",
	})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, Platform: "ios"},
		{ID: uuid.New(), UserID: userID, Platform: "android"},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	result, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

	err := fx.service.RemoveDevice(ctx, userID, device.ID)

	assert.NoError(t, err)
}

func TestDeviceService_RemoveDevice_ForeignDeviceForbidden(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := &entity.UserDevice{ID: uuid.New(), UserID: uuid.New()}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	err := fx.service.RemoveDevice(ctx, uuid.New(), device.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.RemoveDevice(ctx, uuid.New(), deviceID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
