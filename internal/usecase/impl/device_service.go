package impl

import (
	"context"
	"time"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device registration service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
	}
}

// RegisterDevice registers a device for push delivery, or refreshes the FCM
// token when the device is already known.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if info == nil || info.FCMToken == "" || info.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	// Same physical device re-registering just refreshes its token.
	for _, device := range devices {
		if device.DeviceID == info.DeviceID {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}
			device.FCMToken = info.FCMToken
			device.UpdatedAt = time.Now().UTC()

			return device, nil
		}
	}

	device := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: info.FCMToken,
		DeviceID: info.DeviceID,
		Platform: info.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// RemoveDevice retires a device so it no longer receives pushes. Only the
// owner may remove it.
func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.ID == deviceID {
			if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
				return errors.Wrap(err, "failed to delete device")
			}

			return nil
		}
	}

	return domainerrors.ErrNotFound.WithDetails("device not found for this user")
}
