package usecase

import (
	"context"

	"nearnow/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceUsecase defines the interface for presence tracking use cases.
type PresenceUsecase interface {
	// Heartbeat asserts that the user is online. The durable write is
	// rate-limited per user; the ephemeral transition is always announced on
	// the presence channel.
	Heartbeat(ctx context.Context, userID uuid.UUID) error

	// SetOffline marks the user offline immediately.
	SetOffline(ctx context.Context, userID uuid.UUID) error

	// IsOnline reports the user's durable online flag. Users with no presence
	// row are offline.
	IsOnline(ctx context.Context, userID uuid.UUID) (bool, error)

	// GetPresence returns the durable presence rows for a set of users.
	GetPresence(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PresenceState, error)
}
