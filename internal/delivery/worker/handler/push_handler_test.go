package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nearnow/config"
	"nearnow/internal/domain/entity"
	"nearnow/internal/domain/service"
	mockRepo "nearnow/internal/mocks/repository"
	mockSvc "nearnow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPushHandler(t *testing.T) (*mockSvc.MockNotificationService, *mockRepo.MockDeviceRepository, *PushHandler) {
	mockNotificationSvc := mockSvc.NewMockNotificationService(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

	handler := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          testLogger(),
		NotificationSvc: mockNotificationSvc,
		DeviceRepo:      mockDeviceRepo,
	})

	return mockNotificationSvc, mockDeviceRepo, handler
}

// pushRequest wraps an event the way Pub/Sub push delivery would.
func pushRequest(t *testing.T, eventType string, event any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{"event_type": eventType}
	msg.Message.MessageID = uuid.New().String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Subscription = "projects/local/subscriptions/push-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_ChatPush_FansOutToRecipientDevices(t *testing.T) {
	mockNotificationSvc, mockDeviceRepo, handler := newPushHandler(t)

	recipientID := uuid.New()
	event := &service.ChatPushEvent{
		MessageID:   uuid.New(),
		MatchID:     uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: recipientID,
		Kind:        "text",
		Preview:     "hey there",
		SentAt:      time.Now().UTC(),
	}
	c, rec := pushRequest(t, "chat_push", event)

	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-a"},
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-b"},
	}
	mockDeviceRepo.EXPECT().
		FindDevicesForUsers(mock.Anything, []uuid.UUID{recipientID}).
		Return(devices, nil)

	mockNotificationSvc.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushNotification")).
		RunAndReturn(func(_ context.Context, notification *service.PushNotification) error {
			assert.Equal(t, "New message", notification.Title)
			assert.Equal(t, "hey there", notification.Body)
			assert.Equal(t, event.MatchID.String(), notification.Data["match_id"])

			return nil
		}).
		Times(2)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MatchPush_NotifiesBothParticipants(t *testing.T) {
	mockNotificationSvc, mockDeviceRepo, handler := newPushHandler(t)

	userA := uuid.New()
	userB := uuid.New()
	event := &service.MatchPushEvent{
		MatchID:   uuid.New(),
		UserA:     userA,
		UserB:     userB,
		MatchedAt: time.Now().UTC(),
	}
	c, rec := pushRequest(t, "match_push", event)

	mockDeviceRepo.EXPECT().
		FindDevicesForUsers(mock.Anything, []uuid.UUID{userA, userB}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userA, FCMToken: "token-a"},
			{ID: uuid.New(), UserID: userB, FCMToken: "token-b"},
		}, nil)

	mockNotificationSvc.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushNotification")).
		Return(nil).
		Times(2)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DeviceLookupFailureIsRetryable(t *testing.T) {
	_, mockDeviceRepo, handler := newPushHandler(t)

	event := &service.ChatPushEvent{
		MessageID:   uuid.New(),
		MatchID:     uuid.New(),
		RecipientID: uuid.New(),
		Preview:     "hi",
		SentAt:      time.Now().UTC(),
	}
	c, rec := pushRequest(t, "chat_push", event)

	mockDeviceRepo.EXPECT().
		FindDevicesForUsers(mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, errors.New("connection refused"))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_SendFailureIsNotRetried(t *testing.T) {
	mockNotificationSvc, mockDeviceRepo, handler := newPushHandler(t)

	recipientID := uuid.New()
	event := &service.ChatPushEvent{
		MessageID:   uuid.New(),
		MatchID:     uuid.New(),
		RecipientID: recipientID,
		Preview:     "hi",
		SentAt:      time.Now().UTC(),
	}
	c, rec := pushRequest(t, "chat_push", event)

	mockDeviceRepo.EXPECT().
		FindDevicesForUsers(mock.Anything, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, FCMToken: "token-a"},
		}, nil)

	// A per-device send failure is tallied, not bubbled; retrying the whole
	// event would double-send to the devices that succeeded.
	mockNotificationSvc.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushNotification")).
		Return(errors.New("fcm unavailable"))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NoDevicesIsSuccess(t *testing.T) {
	_, mockDeviceRepo, handler := newPushHandler(t)

	event := &service.ChatPushEvent{
		MessageID:   uuid.New(),
		MatchID:     uuid.New(),
		RecipientID: uuid.New(),
		Preview:     "hi",
		SentAt:      time.Now().UTC(),
	}
	c, rec := pushRequest(t, "chat_push", event)

	mockDeviceRepo.EXPECT().
		FindDevicesForUsers(mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UnknownEventTypeIsSwallowed(t *testing.T) {
	_, _, handler := newPushHandler(t)

	c, rec := pushRequest(t, "mystery_event", map[string]string{"foo": "bar"})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedData(t *testing.T) {
	_, _, handler := newPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "not-base64!!!"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
