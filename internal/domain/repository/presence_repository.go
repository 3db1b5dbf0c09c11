package repository

import (
	"context"

	"nearnow/internal/domain/entity"
	"nearnow/internal/errors"

	"github.com/google/uuid"
)

// ErrPresenceNotFound is returned when a user has no presence row yet.
var ErrPresenceNotFound = errors.New("presence state not found")

// PresenceRepository defines the interface for durable presence state.
type PresenceRepository interface {
	// UpsertPresence writes the user's presence row, replacing any prior one.
	UpsertPresence(ctx context.Context, state *entity.PresenceState) error

	// FindPresenceByUser retrieves the presence row for a user.
	FindPresenceByUser(ctx context.Context, userID uuid.UUID) (*entity.PresenceState, error)

	// FindPresenceByUsers retrieves presence rows for a set of users.
	// Users without a row are simply absent from the result.
	FindPresenceByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PresenceState, error)
}
