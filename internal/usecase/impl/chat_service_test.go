package impl

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"nearnow/config"
	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/domain/service"
	mockRepo "nearnow/internal/mocks/repository"
	mockSvc "nearnow/internal/mocks/service"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatTestMocks struct {
	matchRepo      *mockRepo.MockMatchRepository
	messageRepo    *mockRepo.MockMessageRepository
	feed           *mockSvc.MockRealtimeFeed
	imageStore     *mockSvc.MockImageStore
	eventPublisher *mockSvc.MockEventPublisher
}

func newChatService(t *testing.T) (*chatTestMocks, *chatService) {
	m := &chatTestMocks{
		matchRepo:      mockRepo.NewMockMatchRepository(t),
		messageRepo:    mockRepo.NewMockMessageRepository(t),
		feed:           mockSvc.NewMockRealtimeFeed(t),
		imageStore:     mockSvc.NewMockImageStore(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Chat: &config.ChatConfig{
			HistoryPageSize:  50,
			TypingTimeoutSec: 1,
		},
	}

	svc := NewChatService(ChatServiceParams{
		MatchRepo:      m.matchRepo,
		MessageRepo:    m.messageRepo,
		Feed:           m.feed,
		ImageStore:     m.imageStore,
		EventPublisher: m.eventPublisher,
		Config:         cfg,
		Logger:         testLogger(),
	})

	return m, svc.(*chatService)
}

func activeMatchFor(senderID uuid.UUID) *entity.Match {
	userA, userB := entity.CanonicalPair(senderID, uuid.New())

	return &entity.Match{ID: uuid.New(), UserA: userA, UserB: userB, IsActive: true}
}

func TestChatService_Send_Success(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	match := activeMatchFor(senderID)

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	var published *service.FeedEvent
	m.feed.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.FeedEvent")).
		RunAndReturn(func(_ context.Context, event *service.FeedEvent) error {
			published = event

			return nil
		})

	var push *service.ChatPushEvent
	m.eventPublisher.EXPECT().
		PublishChatPush(ctx, mock.AnythingOfType("*service.ChatPushEvent")).
		RunAndReturn(func(_ context.Context, event *service.ChatPushEvent) error {
			push = event

			return nil
		})

	message, err := svc.Send(ctx, match.ID, senderID, &usecase.SendMessageInput{Content: "  hey there  "})
	require.NoError(t, err)
	assert.Equal(t, "hey there", message.Content)
	assert.Equal(t, entity.MessageKindText, message.Kind)

	require.NotNil(t, published)
	assert.Equal(t, service.FeedEventMessage, published.Type)
	assert.Equal(t, match.ID, published.MatchID)
	require.NotNil(t, published.Message)
	assert.Equal(t, message.ID, published.Message.MessageID)

	require.NotNil(t, push)
	assert.Equal(t, match.OtherParticipant(senderID), push.RecipientID)
	assert.Equal(t, "hey there", push.Preview)
}

func TestChatService_Send_EmptyMessage(t *testing.T) {
	_, svc := newChatService(t)

	message, err := svc.Send(context.Background(), uuid.New(), uuid.New(), &usecase.SendMessageInput{Content: "   "})
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
}

func TestChatService_Send_MessageTooLong(t *testing.T) {
	_, svc := newChatService(t)

	message, err := svc.Send(context.Background(), uuid.New(), uuid.New(), &usecase.SendMessageInput{
		Content: strings.Repeat("a", maxMessageLength+1),
	})
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrMessageTooLong)
}

func TestChatService_Send_ClosedMatch(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	match := activeMatchFor(senderID)
	match.IsActive = false

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	message, err := svc.Send(ctx, match.ID, senderID, &usecase.SendMessageInput{Content: "hello"})
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotActive)
}

func TestChatService_Send_NotParticipant(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	match := activeMatchFor(uuid.New())

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	message, err := svc.Send(ctx, match.ID, uuid.New(), &usecase.SendMessageInput{Content: "hello"})
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrNotMatchParticipant)
}

func TestChatService_SendLocation_FormatsContent(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	match := activeMatchFor(senderID)

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		RunAndReturn(func(_ context.Context, message *entity.Message) error {
			assert.Equal(t, "43.65,-79.38", message.Content)
			assert.Equal(t, entity.MessageKindLocation, message.Kind)

			return nil
		})

	m.feed.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	m.eventPublisher.EXPECT().
		PublishChatPush(ctx, mock.AnythingOfType("*service.ChatPushEvent")).
		RunAndReturn(func(_ context.Context, event *service.ChatPushEvent) error {
			assert.Equal(t, "shared a location", event.Preview)

			return nil
		})

	message, err := svc.SendLocation(ctx, match.ID, senderID, 43.65, -79.38)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageKindLocation, message.Kind)
}

func TestChatService_SendLocation_InvalidCoordinates(t *testing.T) {
	_, svc := newChatService(t)

	message, err := svc.SendLocation(context.Background(), uuid.New(), uuid.New(), 95.0, 0.0)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestChatService_SendImage_DeletesOrphanOnFailure(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	match := activeMatchFor(senderID)

	// authorize runs twice: once in SendImage, once in appendMessage.
	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil).
		Times(2)

	var savedKey string
	m.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, _ io.Reader) (string, error) {
			savedKey = key

			return "https://cdn.example.com/" + key, nil
		})

	m.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(errors.New("insert failed"))

	m.imageStore.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, savedKey, key)

			return nil
		})

	message, err := svc.SendImage(ctx, match.ID, senderID, "image/jpeg", strings.NewReader("jpeg bytes"))
	assert.Nil(t, message)
	assert.Error(t, err)
}

func TestChatService_History_ChronologicalOrder(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := activeMatchFor(userID)
	match.IsActive = false // history survives an unmatch

	newer := &entity.Message{ID: uuid.New(), MatchID: match.ID, SentAt: time.Now().UTC()}
	older := &entity.Message{ID: uuid.New(), MatchID: match.ID, SentAt: time.Now().UTC().Add(-time.Minute)}

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.messageRepo.EXPECT().
		FindMessagesByMatch(ctx, match.ID, 10, (*repository.MessageCursor)(nil)).
		Return([]*entity.Message{newer, older}, nil)

	messages, err := svc.History(ctx, match.ID, userID, &usecase.HistoryInput{Limit: 10})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, older.ID, messages[0].ID)
	assert.Equal(t, newer.ID, messages[1].ID)
}

func TestChatService_History_CarriesCompositeCursor(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := activeMatchFor(userID)

	boundaryAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	boundaryID := uuid.New()

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	// The boundary message's ID rides along with its timestamp so a page
	// split between two equal-timestamp messages drops nothing.
	m.messageRepo.EXPECT().
		FindMessagesByMatch(ctx, match.ID, 10, &repository.MessageCursor{SentAt: boundaryAt, ID: boundaryID}).
		Return(nil, nil)

	_, err := svc.History(ctx, match.ID, userID, &usecase.HistoryInput{
		Limit:    10,
		Before:   &boundaryAt,
		BeforeID: &boundaryID,
	})
	require.NoError(t, err)
}

func TestChatService_History_DefaultsToPageSize(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := activeMatchFor(userID)

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.messageRepo.EXPECT().
		FindMessagesByMatch(ctx, match.ID, 50, (*repository.MessageCursor)(nil)).
		Return(nil, nil)

	_, err := svc.History(ctx, match.ID, userID, nil)
	require.NoError(t, err)
}

func TestChatService_MarkRead_PublishesReceipt(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	readerID := uuid.New()
	match := activeMatchFor(readerID)
	readIDs := []uuid.UUID{uuid.New(), uuid.New()}

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.messageRepo.EXPECT().
		MarkMessagesRead(ctx, match.ID, readerID, mock.AnythingOfType("time.Time")).
		Return(readIDs, nil)

	m.feed.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.FeedEvent")).
		RunAndReturn(func(_ context.Context, event *service.FeedEvent) error {
			assert.Equal(t, service.FeedEventReadReceipt, event.Type)
			require.NotNil(t, event.Read)
			assert.Equal(t, readerID, event.Read.ReaderID)
			assert.Equal(t, readIDs, event.Read.MessageIDs)

			return nil
		})

	got, err := svc.MarkRead(ctx, match.ID, readerID)
	require.NoError(t, err)
	assert.Equal(t, readIDs, got)
}

func TestChatService_MarkRead_NothingUnread(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	readerID := uuid.New()
	match := activeMatchFor(readerID)

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.messageRepo.EXPECT().
		MarkMessagesRead(ctx, match.ID, readerID, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	got, err := svc.MarkRead(ctx, match.ID, readerID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChatService_Subscribe_DispatchesToHandlers(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	clientID := uuid.New()
	match := activeMatchFor(clientID)

	events := make(chan *service.FeedEvent, 1)
	feedSub := mockSvc.NewMockFeedSubscription(t)
	feedSub.EXPECT().Events().Return((<-chan *service.FeedEvent)(events))
	feedSub.EXPECT().Close().RunAndReturn(func() error {
		close(events)

		return nil
	})

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.feed.EXPECT().
		Subscribe(ctx, match.ID).
		Return(feedSub, nil)

	received := make(chan *service.MessageEvent, 1)
	sub, err := svc.Subscribe(ctx, match.ID, clientID, &usecase.ChatSubscriptionHandlers{
		OnMessage: func(event *service.MessageEvent) {
			received <- event
		},
	})
	require.NoError(t, err)

	messageID := uuid.New()
	events <- &service.FeedEvent{
		Type:    service.FeedEventMessage,
		MatchID: match.ID,
		Message: &service.MessageEvent{MessageID: messageID},
	}

	select {
	case event := <-received:
		assert.Equal(t, messageID, event.MessageID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatched message event")
	}

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
}

func TestChatService_Subscribe_ReplacesPriorSubscription(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	clientID := uuid.New()
	match := activeMatchFor(clientID)

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil).
		Times(2)

	firstEvents := make(chan *service.FeedEvent)
	firstSub := mockSvc.NewMockFeedSubscription(t)
	firstSub.EXPECT().Events().Return((<-chan *service.FeedEvent)(firstEvents))
	firstSub.EXPECT().Close().RunAndReturn(func() error {
		close(firstEvents)

		return nil
	})

	secondEvents := make(chan *service.FeedEvent)
	secondSub := mockSvc.NewMockFeedSubscription(t)
	secondSub.EXPECT().Events().Return((<-chan *service.FeedEvent)(secondEvents))
	secondSub.EXPECT().Close().RunAndReturn(func() error {
		close(secondEvents)

		return nil
	})

	m.feed.EXPECT().Subscribe(ctx, match.ID).Return(firstSub, nil).Once()
	m.feed.EXPECT().Subscribe(ctx, match.ID).Return(secondSub, nil).Once()

	_, err := svc.Subscribe(ctx, match.ID, clientID, nil)
	require.NoError(t, err)

	// The second subscription for the same client and match evicts the first.
	replacement, err := svc.Subscribe(ctx, match.ID, clientID, nil)
	require.NoError(t, err)

	require.NoError(t, replacement.Close())
}

func TestChatService_SendTyping_AutoStops(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := activeMatchFor(userID)

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	var mu sync.Mutex
	var signals []bool
	m.feed.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*service.FeedEvent")).
		RunAndReturn(func(_ context.Context, event *service.FeedEvent) error {
			require.NotNil(t, event.Typing)
			mu.Lock()
			signals = append(signals, event.Typing.IsTyping)
			mu.Unlock()

			return nil
		})

	require.NoError(t, svc.SendTyping(ctx, match.ID, userID, true))

	// TypingTimeoutSec is 1 in the test config; the stop signal fires on its own.
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(signals) == 2 && signals[0] && !signals[1]
	}, 3*time.Second, 50*time.Millisecond)
}

func TestChatService_SendTyping_ExplicitStopCancelsTimer(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := activeMatchFor(userID)

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil).
		Times(2)

	m.feed.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil).
		Times(2)

	require.NoError(t, svc.SendTyping(ctx, match.ID, userID, true))
	require.NoError(t, svc.SendTyping(ctx, match.ID, userID, false))

	svc.typingTimersMu.Lock()
	timerCount := len(svc.typingTimers)
	svc.typingTimersMu.Unlock()
	assert.Zero(t, timerCount)
}

func TestChatService_Subscribe_NotParticipant(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	match := activeMatchFor(uuid.New())

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	sub, err := svc.Subscribe(ctx, match.ID, uuid.New(), nil)
	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domainerrors.ErrNotMatchParticipant)
}

func TestChatService_MarkRead_NotFound(t *testing.T) {
	m, svc := newChatService(t)

	ctx := context.Background()
	matchID := uuid.New()

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(nil, repository.ErrMatchNotFound)

	got, err := svc.MarkRead(ctx, matchID, uuid.New())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
}
