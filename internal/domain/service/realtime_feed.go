package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FeedEventType discriminates the events flowing over a match's realtime feed.
type FeedEventType string

// Feed event types.
const (
	FeedEventMessage      FeedEventType = "message"
	FeedEventReadReceipt  FeedEventType = "read_receipt"
	FeedEventTyping       FeedEventType = "typing"
	FeedEventMatchClosed  FeedEventType = "match_closed"
	FeedEventMatchCreated FeedEventType = "match_created"
)

// FeedEvent is one event on a match's realtime feed. Exactly one of the
// payload fields is set, according to Type.
type FeedEvent struct {
	Type    FeedEventType     `json:"type"`
	MatchID uuid.UUID         `json:"matchId"`
	Message *MessageEvent     `json:"message,omitempty"`
	Read    *ReadReceiptEvent `json:"read,omitempty"`
	Typing  *TypingEvent      `json:"typing,omitempty"`
}

// MessageEvent carries a newly appended message.
type MessageEvent struct {
	MessageID uuid.UUID `json:"messageId"`
	SenderID  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind"`
	SentAt    time.Time `json:"sentAt"`
}

// ReadReceiptEvent carries a batch read receipt.
type ReadReceiptEvent struct {
	ReaderID   uuid.UUID   `json:"readerId"`
	MessageIDs []uuid.UUID `json:"messageIds"`
	ReadAt     time.Time   `json:"readAt"`
}

// TypingEvent carries a transient typing signal. It is never persisted.
type TypingEvent struct {
	UserID   uuid.UUID `json:"userId"`
	IsTyping bool      `json:"isTyping"`
}

// FeedSubscription is a live subscription to one match's feed. Events arrive
// on Events until Close is called or the subscription's context ends.
type FeedSubscription interface {
	// Events returns the channel delivering feed events in publish order.
	Events() <-chan *FeedEvent

	// Close tears the subscription down. Closing twice is safe.
	Close() error
}

// RealtimeFeed defines the interface for the per-match realtime event
// channel used for chat messages, read receipts, and typing signals.
type RealtimeFeed interface {
	// Publish broadcasts an event to every live subscriber of the match's
	// feed. Delivery is best effort; durable state lives in the database.
	Publish(ctx context.Context, event *FeedEvent) error

	// Subscribe opens a live feed for one match. Each call returns an
	// independent subscription.
	Subscribe(ctx context.Context, matchID uuid.UUID) (FeedSubscription, error)
}
