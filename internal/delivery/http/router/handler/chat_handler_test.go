package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	mockUC "nearnow/internal/mocks/usecase"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_SendMessage(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/matches/"+matchID.String()+"/messages",
		`{"content":"hey there"}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	messageID := uuid.New()
	mockChatUC.EXPECT().
		Send(mock.Anything, matchID, userID, &usecase.SendMessageInput{Content: "hey there"}).
		Return(&entity.Message{
			ID:       messageID,
			MatchID:  matchID,
			SenderID: userID,
			Content:  "hey there",
			Kind:     entity.MessageKindText,
			SentAt:   time.Now().UTC(),
		}, nil)

	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), messageID.String())
}

func TestChatHandler_SendMessage_ClosedMatch(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/matches/"+matchID.String()+"/messages",
		`{"content":"hello?"}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	mockChatUC.EXPECT().
		Send(mock.Anything, matchID, userID, mock.AnythingOfType("*usecase.SendMessageInput")).
		Return(nil, domainerrors.ErrMatchNotActive)

	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "MATCH_NOT_ACTIVE")
}

func TestChatHandler_SendLocation(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/matches/"+matchID.String()+"/messages/location",
		`{"latitude":43.65,"longitude":-79.38}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	mockChatUC.EXPECT().
		SendLocation(mock.Anything, matchID, userID, 43.65, -79.38).
		Return(&entity.Message{
			ID:      uuid.New(),
			Kind:    entity.MessageKindLocation,
			Content: "43.65,-79.38",
		}, nil)

	require.NoError(t, handler.SendLocation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "location")
}

func TestChatHandler_History_ParsesCursor(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	before := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	beforeID := uuid.New()
	target := fmt.Sprintf("/matches/%s/messages?limit=10&before=%s&before_id=%s",
		matchID, before.Format(time.RFC3339), beforeID)
	c, rec := newTestContext(t, http.MethodGet, target, "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	mockChatUC.EXPECT().
		History(mock.Anything, matchID, userID, mock.AnythingOfType("*usecase.HistoryInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, input *usecase.HistoryInput) ([]*entity.Message, error) {
			assert.Equal(t, 10, input.Limit)
			require.NotNil(t, input.Before)
			assert.True(t, input.Before.Equal(before))
			require.NotNil(t, input.BeforeID)
			assert.Equal(t, beforeID, *input.BeforeID)

			return []*entity.Message{}, nil
		})

	require.NoError(t, handler.History(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatHandler_History_RejectsOrphanBeforeID(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet,
		"/matches/"+matchID.String()+"/messages?before_id="+uuid.New().String(), "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	require.NoError(t, handler.History(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CURSOR")
}

func TestChatHandler_History_RejectsBadCursor(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/matches/"+matchID.String()+"/messages?before=yesterday", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	require.NoError(t, handler.History(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CURSOR")
}

func TestChatHandler_MarkRead(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/matches/"+matchID.String()+"/read", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	readID := uuid.New()
	mockChatUC.EXPECT().
		MarkRead(mock.Anything, matchID, userID).
		Return([]uuid.UUID{readID}, nil)

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), readID.String())
}

func TestChatHandler_Stream_DuplicateMatchClosedEndsStreamOnce(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/matches/"+matchID.String()+"/stream", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	mockSub := mockUC.NewMockChatSubscription(t)
	mockSub.EXPECT().Close().Return(nil)

	mockChatUC.EXPECT().
		Subscribe(mock.Anything, matchID, userID, mock.AnythingOfType("*usecase.ChatSubscriptionHandlers")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, handlers *usecase.ChatSubscriptionHandlers) (usecase.ChatSubscription, error) {
			// Both participants unmatching near-simultaneously can deliver
			// the closed event twice on the same feed; the stream must end
			// cleanly, not panic.
			handlers.OnMatchClosed()
			handlers.OnMatchClosed()

			return mockSub, nil
		})

	require.NoError(t, handler.Stream(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "match_closed")
}

func TestChatHandler_SendTyping(t *testing.T) {
	mockChatUC := mockUC.NewMockChatUsecase(t)
	handler := &ChatHandler{chatUC: mockChatUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/matches/"+matchID.String()+"/typing",
		`{"is_typing":true}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	mockChatUC.EXPECT().
		SendTyping(mock.Anything, matchID, userID, true).
		Return(nil)

	require.NoError(t, handler.SendTyping(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
