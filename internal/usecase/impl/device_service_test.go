package impl

import (
	"context"
	"testing"

	"nearnow/internal/domain/entity"
	mockRepo "nearnow/internal/mocks/repository"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: mockDeviceRepo})

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{
		FCMToken: "fcm-token-abc",
		DeviceID: "device-hw-id",
		Platform: "android",
	}

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil)

	mockDeviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, info.FCMToken, device.FCMToken)
	assert.Equal(t, info.DeviceID, device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: mockDeviceRepo})

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-hw-id",
		Platform: "ios",
		IsActive: true,
	}

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)

	mockDeviceRepo.EXPECT().
		UpdateFCMToken(ctx, existing.ID, "new-token").
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-token",
		DeviceID: "device-hw-id",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_MissingFields(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: mockDeviceRepo})

	device, err := service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "",
		DeviceID: "device-hw-id",
	})
	assert.Nil(t, device)
	assert.Error(t, err)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: mockDeviceRepo})

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: deviceID, UserID: userID}}, nil)

	mockDeviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	require.NoError(t, service.RemoveDevice(ctx, userID, deviceID))
}

func TestDeviceService_RemoveDevice_NotOwned(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: mockDeviceRepo})

	ctx := context.Background()
	userID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID}}, nil)

	err := service.RemoveDevice(ctx, userID, uuid.New())
	assert.Error(t, err)
}
