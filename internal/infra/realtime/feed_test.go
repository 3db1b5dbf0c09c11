package realtime

import (
	"context"
	"testing"
	"time"

	"nearnow/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func waitForEvent[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case event, ok := <-ch:
		require.True(t, ok, "subscription channel closed unexpectedly")

		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")

		panic("unreachable")
	}
}

func TestRedisFeed_PublishReachesSubscriber(t *testing.T) {
	client := newTestClient(t)
	feed := NewFeed(client, nil)
	ctx := context.Background()

	matchID := uuid.New()
	sub, err := feed.Subscribe(ctx, matchID)
	require.NoError(t, err)
	defer sub.Close()

	senderID := uuid.New()
	err = feed.Publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventMessage,
		MatchID: matchID,
		Message: &service.MessageEvent{
			MessageID: uuid.New(),
			SenderID:  senderID,
			Content:   "hey there",
			Kind:      "text",
			SentAt:    time.Now().UTC(),
		},
	})
	require.NoError(t, err)

	event := waitForEvent(t, sub.Events())
	assert.Equal(t, service.FeedEventMessage, event.Type)
	assert.Equal(t, matchID, event.MatchID)
	require.NotNil(t, event.Message)
	assert.Equal(t, senderID, event.Message.SenderID)
	assert.Equal(t, "hey there", event.Message.Content)
}

func TestRedisFeed_SubscriptionsAreIsolatedPerMatch(t *testing.T) {
	client := newTestClient(t)
	feed := NewFeed(client, nil)
	ctx := context.Background()

	matchA := uuid.New()
	matchB := uuid.New()

	subA, err := feed.Subscribe(ctx, matchA)
	require.NoError(t, err)
	defer subA.Close()

	err = feed.Publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventTyping,
		MatchID: matchB,
		Typing:  &service.TypingEvent{UserID: uuid.New(), IsTyping: true},
	})
	require.NoError(t, err)

	err = feed.Publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventTyping,
		MatchID: matchA,
		Typing:  &service.TypingEvent{UserID: uuid.New(), IsTyping: true},
	})
	require.NoError(t, err)

	// Only the matchA event arrives on matchA's feed.
	event := waitForEvent(t, subA.Events())
	assert.Equal(t, matchA, event.MatchID)

	select {
	case extra := <-subA.Events():
		t.Fatalf("unexpected cross-match event: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRedisFeed_CloseIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	feed := NewFeed(client, nil)

	sub, err := feed.Subscribe(context.Background(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	assert.NoError(t, sub.Close())
}

func TestRedisPresenceChannel_PublishReachesSubscriber(t *testing.T) {
	client := newTestClient(t)
	channel := NewPresenceChannel(client, nil)
	ctx := context.Background()

	sub, err := channel.Subscribe(ctx)
	require.NoError(t, err)
	defer sub.Close()

	userID := uuid.New()
	err = channel.Publish(ctx, &service.PresenceEvent{
		UserID:   userID,
		IsOnline: true,
		At:       time.Now().UTC(),
	})
	require.NoError(t, err)

	event := waitForEvent(t, sub.Events())
	assert.Equal(t, userID, event.UserID)
	assert.True(t, event.IsOnline)
}
