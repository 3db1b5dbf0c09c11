package usecase

import (
	"context"

	"nearnow/internal/domain/entity"

	"github.com/google/uuid"
)

// FindNearbyInput represents the parameters of a proximity query.
// Zero values fall back to the configured defaults.
type FindNearbyInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
	Limit     int     `json:"limit"`
}

// DiscoveryUsecase defines the interface for the proximity query.
type DiscoveryUsecase interface {
	// FindNearby returns users within the radius of the given point, closest
	// first with ties broken by ascending user ID, excluding the requester
	// and any blocked pairs. Displayed coordinates are privacy-fuzzed;
	// filtering and ordering always use true coordinates.
	FindNearby(ctx context.Context, requesterID uuid.UUID, input *FindNearbyInput) ([]*entity.NearbyUser, error)
}
