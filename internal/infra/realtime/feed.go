package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"nearnow/internal/domain/service"
	"nearnow/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// feedChannelPrefix namespaces per-match feed channels in Redis.
const feedChannelPrefix = "feed:match:"

// redisFeed implements service.RealtimeFeed on Redis pub/sub. Each match has
// its own channel; every subscriber gets an independent Redis subscription so
// slow consumers never stall each other.
type redisFeed struct {
	client *redis.Client
	logger *slog.Logger
}

// NewFeed is the constructor for the Redis-backed realtime feed.
func NewFeed(client *redis.Client, logger *slog.Logger) service.RealtimeFeed {
	return &redisFeed{
		client: client,
		logger: logger,
	}
}

func feedChannel(matchID uuid.UUID) string {
	return feedChannelPrefix + matchID.String()
}

// Publish broadcasts an event to every live subscriber of the match's feed.
func (f *redisFeed) Publish(ctx context.Context, event *service.FeedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal feed event")
	}

	if err := f.client.Publish(ctx, feedChannel(event.MatchID), payload).Err(); err != nil {
		return errors.Wrap(err, "failed to publish feed event")
	}

	return nil
}

// Subscribe opens a live feed for one match.
func (f *redisFeed) Subscribe(ctx context.Context, matchID uuid.UUID) (service.FeedSubscription, error) {
	pubsub := f.client.Subscribe(ctx, feedChannel(matchID))

	// Force the SUBSCRIBE round trip so a broken connection fails here
	// instead of silently delivering nothing.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, errors.Wrap(err, "failed to subscribe to match feed")
	}

	sub := &feedSubscription{
		pubsub: pubsub,
		events: make(chan *service.FeedEvent, 16),
		done:   make(chan struct{}),
	}
	go sub.pump(f.logger)

	return sub, nil
}

type feedSubscription struct {
	pubsub    *redis.PubSub
	events    chan *service.FeedEvent
	done      chan struct{}
	closeOnce sync.Once
}

// Events returns the channel delivering feed events in publish order.
func (s *feedSubscription) Events() <-chan *service.FeedEvent {
	return s.events
}

// Close tears the subscription down. Closing twice is safe.
func (s *feedSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})

	return err
}

// pump decodes raw pub/sub messages into feed events until the underlying
// channel closes. Undecodable payloads are dropped with a warning.
func (s *feedSubscription) pump(logger *slog.Logger) {
	defer close(s.events)

	for msg := range s.pubsub.Channel() {
		var event service.FeedEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			if logger != nil {
				logger.Warn("dropping undecodable feed event", slog.String("error", err.Error()))
			}

			continue
		}

		select {
		case s.events <- &event:
		case <-s.done:
			return
		}
	}
}
