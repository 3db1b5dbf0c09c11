// Package service defines interfaces for external services and infrastructure
// concerns that the use case layer depends on.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatPushEvent is the payload published when a message needs an offline
// push delivery. The push worker consumes these from the queue and fans the
// notification out to the recipient's devices.
type ChatPushEvent struct {
	MessageID   uuid.UUID `json:"messageId"`
	MatchID     uuid.UUID `json:"matchId"`
	SenderID    uuid.UUID `json:"senderId"`
	RecipientID uuid.UUID `json:"recipientId"`
	Kind        string    `json:"kind"`
	Preview     string    `json:"preview"`
	SentAt      time.Time `json:"sentAt"`
}

// MatchPushEvent is published when a mutual match forms so both participants
// can be notified.
type MatchPushEvent struct {
	MatchID   uuid.UUID `json:"matchId"`
	UserA     uuid.UUID `json:"userA"`
	UserB     uuid.UUID `json:"userB"`
	MatchedAt time.Time `json:"matchedAt"`
}

// EventPublisher defines the interface for publishing domain events to a
// message queue for asynchronous processing.
type EventPublisher interface {
	// PublishChatPush enqueues a chat push event for the push worker.
	PublishChatPush(ctx context.Context, event *ChatPushEvent) error

	// PublishMatchPush enqueues a match push event for the push worker.
	PublishMatchPush(ctx context.Context, event *MatchPushEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
