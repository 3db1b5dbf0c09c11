package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"nearnow/internal/domain/entity"
	mockUC "nearnow/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPresenceHandler_Heartbeat(t *testing.T) {
	mockPresenceUC := mockUC.NewMockPresenceUsecase(t)
	handler := &PresenceHandler{presenceUC: mockPresenceUC, logger: testLogger()}

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/presence/heartbeat", "", userID)

	mockPresenceUC.EXPECT().
		Heartbeat(mock.Anything, userID).
		Return(nil)

	require.NoError(t, handler.Heartbeat(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "online")
}

func TestPresenceHandler_SetOffline(t *testing.T) {
	mockPresenceUC := mockUC.NewMockPresenceUsecase(t)
	handler := &PresenceHandler{presenceUC: mockPresenceUC, logger: testLogger()}

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/presence/offline", "", userID)

	mockPresenceUC.EXPECT().
		SetOffline(mock.Anything, userID).
		Return(nil)

	require.NoError(t, handler.SetOffline(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "offline")
}

func TestPresenceHandler_GetPresence(t *testing.T) {
	mockPresenceUC := mockUC.NewMockPresenceUsecase(t)
	handler := &PresenceHandler{presenceUC: mockPresenceUC, logger: testLogger()}

	userID := uuid.New()
	otherA := uuid.New()
	otherB := uuid.New()
	target := fmt.Sprintf("/presence?ids=%s,%s", otherA, otherB)
	c, rec := newTestContext(t, http.MethodGet, target, "", userID)

	mockPresenceUC.EXPECT().
		GetPresence(mock.Anything, []uuid.UUID{otherA, otherB}).
		Return([]*entity.PresenceState{
			{UserID: otherA, IsOnline: true, LastSeenAt: time.Now().UTC()},
		}, nil)

	require.NoError(t, handler.GetPresence(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), otherA.String())
}

func TestPresenceHandler_GetPresence_RequiresIDs(t *testing.T) {
	mockPresenceUC := mockUC.NewMockPresenceUsecase(t)
	handler := &PresenceHandler{presenceUC: mockPresenceUC, logger: testLogger()}

	c, rec := newTestContext(t, http.MethodGet, "/presence", "", uuid.New())

	require.NoError(t, handler.GetPresence(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_IDS")
}

func TestPresenceHandler_GetPresence_RejectsBadID(t *testing.T) {
	mockPresenceUC := mockUC.NewMockPresenceUsecase(t)
	handler := &PresenceHandler{presenceUC: mockPresenceUC, logger: testLogger()}

	c, rec := newTestContext(t, http.MethodGet, "/presence?ids=not-a-uuid", "", uuid.New())

	require.NoError(t, handler.GetPresence(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
