package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PresenceEvent announces a user's presence transition to interested peers.
type PresenceEvent struct {
	UserID   uuid.UUID `json:"userId"`
	IsOnline bool      `json:"isOnline"`
	At       time.Time `json:"at"`
}

// PresenceSubscription is a live subscription to the presence channel.
type PresenceSubscription interface {
	// Events returns the channel delivering presence transitions.
	Events() <-chan *PresenceEvent

	// Close tears the subscription down. Closing twice is safe.
	Close() error
}

// PresenceChannel defines the interface for broadcasting presence
// transitions. Consumers filter events down to the users they care about.
type PresenceChannel interface {
	// Publish broadcasts a presence transition. Best effort.
	Publish(ctx context.Context, event *PresenceEvent) error

	// Subscribe opens a live feed of presence transitions.
	Subscribe(ctx context.Context) (PresenceSubscription, error)
}
