// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearnow/internal/domain/entity"
	"nearnow/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a user has no stored location.
	ErrLocationNotFound = errors.New("location not found")
	// ErrStaleLocation is returned when a report's capture time precedes the stored one.
	ErrStaleLocation = errors.New("location report is stale")
)

// LocationRepository defines the interface for last-known-location operations.
type LocationRepository interface {
	// UpsertLocation writes the user's current location, replacing any prior row.
	// Returns ErrStaleLocation when the stored CapturedAt is newer than the
	// report's; the stored row is left untouched in that case.
	UpsertLocation(ctx context.Context, location *entity.UserLocation) error

	// FindLocationByUser retrieves the current location for a user.
	FindLocationByUser(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)

	// FindCandidateLocations retrieves every stored location except the
	// requester's. Candidate sets are small enough for the caller to filter
	// and sort in memory.
	FindCandidateLocations(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.UserLocation, error)
}
