package entity

import (
	"time"

	"github.com/google/uuid"
)

// PresenceState represents a user's durable online/offline state.
// One row per user, mutated by the presence tracker only.
type PresenceState struct {
	UserID     uuid.UUID `json:"user_id"`      // The user this state belongs to.
	IsOnline   bool      `json:"is_online"`    // Coarse online flag.
	LastSeenAt time.Time `json:"last_seen_at"` // Timestamp of the last durable presence write.
}
