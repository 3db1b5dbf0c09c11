package repository

import (
	"context"

	"nearnow/internal/domain/entity"
	"nearnow/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = errors.New("match not found")
	// ErrDuplicateMatch is returned when a match already exists for the pair.
	ErrDuplicateMatch = errors.New("match already exists for this pair")
)

// MatchRepository defines the interface for match-related database operations.
type MatchRepository interface {
	// CreateMatch persists a new match. The entity must already be in
	// canonical pair order; the unique (user_a, user_b) index is the
	// concurrent-process backstop and surfaces as ErrDuplicateMatch.
	CreateMatch(ctx context.Context, match *entity.Match) error

	// FindMatchByID retrieves a match by its unique ID.
	FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// FindMatchByPair retrieves the match for an unordered pair, active or not.
	// The implementation canonicalizes the pair before querying.
	FindMatchByPair(ctx context.Context, userA, userB uuid.UUID) (*entity.Match, error)

	// FindActiveMatchesByUser retrieves all active matches involving a user,
	// most recent first.
	FindActiveMatchesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error)

	// UpdateMatchStatus flips the active flag (unmatch / reactivate). The
	// update is conditional on the flag actually changing; the returned bool
	// reports whether this call performed the transition, so concurrent
	// unmatches resolve to exactly one winner.
	UpdateMatchStatus(ctx context.Context, id uuid.UUID, isActive bool) (bool, error)

	// CountActiveMatchesByUser counts active matches involving a user.
	CountActiveMatchesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
