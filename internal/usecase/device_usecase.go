package usecase

import (
	"context"

	"nearnow/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device registration information from the client.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for push-device registration.
type DeviceUsecase interface {
	// RegisterDevice registers a device for push delivery, or refreshes the
	// FCM token when the device is already known.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	// RemoveDevice retires a device so it no longer receives pushes.
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
