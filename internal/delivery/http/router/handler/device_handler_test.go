package handler

import (
	"net/http"
	"testing"

	"nearnow/internal/domain/entity"
	mockUC "nearnow/internal/mocks/usecase"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	mockDeviceUC := mockUC.NewMockDeviceUsecase(t)
	handler := &DeviceHandler{deviceUC: mockDeviceUC, logger: testLogger()}

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/devices",
		`{"fcm_token":"fcm-abc","device_id":"device-1","platform":"ios"}`, userID)

	deviceID := uuid.New()
	mockDeviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{
			FCMToken: "fcm-abc",
			DeviceID: "device-1",
			Platform: "ios",
		}).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "fcm-abc"}, nil)

	require.NoError(t, handler.RegisterDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), deviceID.String())
}

func TestDeviceHandler_RegisterDevice_RejectsUnknownPlatform(t *testing.T) {
	mockDeviceUC := mockUC.NewMockDeviceUsecase(t)
	handler := &DeviceHandler{deviceUC: mockDeviceUC, logger: testLogger()}

	c, rec := newTestContext(t, http.MethodPost, "/devices",
		`{"fcm_token":"fcm-abc","device_id":"device-1","platform":"windows"}`, uuid.New())

	require.NoError(t, handler.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestDeviceHandler_RemoveDevice(t *testing.T) {
	mockDeviceUC := mockUC.NewMockDeviceUsecase(t)
	handler := &DeviceHandler{deviceUC: mockDeviceUC, logger: testLogger()}

	userID := uuid.New()
	deviceID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/devices/"+deviceID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	mockDeviceUC.EXPECT().
		RemoveDevice(mock.Anything, userID, deviceID).
		Return(nil)

	require.NoError(t, handler.RemoveDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_RemoveDevice_InvalidID(t *testing.T) {
	mockDeviceUC := mockUC.NewMockDeviceUsecase(t)
	handler := &DeviceHandler{deviceUC: mockDeviceUC, logger: testLogger()}

	c, rec := newTestContext(t, http.MethodDelete, "/devices/nope", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, handler.RemoveDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
