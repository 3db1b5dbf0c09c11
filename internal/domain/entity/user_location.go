// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserLocation represents a user's last-known position. One current row per
// user, overwritten on each accepted report.
type UserLocation struct {
	UserID     uuid.UUID `json:"user_id"`     // The ID of the reporting user.
	Latitude   float64   `json:"latitude"`    // Latitude in decimal degrees.
	Longitude  float64   `json:"longitude"`   // Longitude in decimal degrees.
	AccuracyM  float64   `json:"accuracy_m"`  // Reported accuracy radius in meters.
	CapturedAt time.Time `json:"captured_at"` // Client capture timestamp; monotonically non-decreasing per user.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last server-side write.
}
