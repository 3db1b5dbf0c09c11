package entity

import (
	"time"

	"github.com/google/uuid"
)

// NearbyUser is one discovery result: a candidate with their distance from
// the requester. Displayed coordinates may be fuzzed for privacy; DistanceKm
// is always computed from true coordinates.
type NearbyUser struct {
	UserID     uuid.UUID `json:"user_id"`
	DistanceKm float64   `json:"distance_km"`
	Latitude   float64   `json:"latitude"`  // Displayed latitude (possibly fuzzed).
	Longitude  float64   `json:"longitude"` // Displayed longitude (possibly fuzzed).
	IsOnline   bool      `json:"is_online"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
