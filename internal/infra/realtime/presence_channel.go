package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"nearnow/internal/domain/service"
	"nearnow/internal/errors"

	"github.com/redis/go-redis/v9"
)

// presenceChannelName is the single Redis channel carrying presence
// transitions. Consumers filter by user on their side.
const presenceChannelName = "presence:transitions"

// redisPresenceChannel implements service.PresenceChannel on Redis pub/sub.
type redisPresenceChannel struct {
	client *redis.Client
	logger *slog.Logger
}

// NewPresenceChannel is the constructor for the Redis-backed presence channel.
func NewPresenceChannel(client *redis.Client, logger *slog.Logger) service.PresenceChannel {
	return &redisPresenceChannel{
		client: client,
		logger: logger,
	}
}

// Publish broadcasts a presence transition.
func (c *redisPresenceChannel) Publish(ctx context.Context, event *service.PresenceEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal presence event")
	}

	if err := c.client.Publish(ctx, presenceChannelName, payload).Err(); err != nil {
		return errors.Wrap(err, "failed to publish presence event")
	}

	return nil
}

// Subscribe opens a live feed of presence transitions.
func (c *redisPresenceChannel) Subscribe(ctx context.Context) (service.PresenceSubscription, error) {
	pubsub := c.client.Subscribe(ctx, presenceChannelName)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, errors.Wrap(err, "failed to subscribe to presence channel")
	}

	sub := &presenceSubscription{
		pubsub: pubsub,
		events: make(chan *service.PresenceEvent, 16),
		done:   make(chan struct{}),
	}
	go sub.pump(c.logger)

	return sub, nil
}

type presenceSubscription struct {
	pubsub    *redis.PubSub
	events    chan *service.PresenceEvent
	done      chan struct{}
	closeOnce sync.Once
}

// Events returns the channel delivering presence transitions.
func (s *presenceSubscription) Events() <-chan *service.PresenceEvent {
	return s.events
}

// Close tears the subscription down. Closing twice is safe.
func (s *presenceSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})

	return err
}

func (s *presenceSubscription) pump(logger *slog.Logger) {
	defer close(s.events)

	for msg := range s.pubsub.Channel() {
		var event service.PresenceEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			if logger != nil {
				logger.Warn("dropping undecodable presence event", slog.String("error", err.Error()))
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
