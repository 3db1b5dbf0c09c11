package entity

import (
	"time"

	"github.com/google/uuid"
)

// TypingSignal is an ephemeral composition indicator. It lives only on the
// realtime layer and is never persisted.
type TypingSignal struct {
	MatchID   uuid.UUID `json:"match_id"`   // The match the signal belongs to.
	UserID    uuid.UUID `json:"user_id"`    // The participant who is (or stopped) typing.
	IsTyping  bool      `json:"is_typing"`  // True while composing; false on stop or timeout.
	ExpiresAt time.Time `json:"expires_at"` // Subscribers treat the signal as stale past this instant.
}
