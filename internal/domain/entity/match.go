package entity

import (
	"time"

	"github.com/google/uuid"
)

// Match represents a mutually-consented relationship between two users.
// The pair is stored canonically ordered (UserA < UserB) so an unordered
// pair has at most one match row regardless of who reciprocated second.
type Match struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the match.
	UserA     uuid.UUID `json:"user_a"`     // The smaller participant ID under canonical ordering.
	UserB     uuid.UUID `json:"user_b"`     // The larger participant ID under canonical ordering.
	IsActive  bool      `json:"is_active"`  // False after an unmatch; reactivated on renewed mutual interest.
	MatchedAt time.Time `json:"matched_at"` // Timestamp of when the match was first created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last state transition.

	UnreadCount int64 `json:"unread_count"` // Unread messages for the listing user. Derived per query, never persisted.
}

// CanonicalPair orders two user IDs so that the first is lexicographically
// smaller. Match rows are always keyed on this ordering.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}

	return b, a
}

// Involves reports whether the given user participates in the match.
func (m *Match) Involves(userID uuid.UUID) bool {
	return m.UserA == userID || m.UserB == userID
}

// OtherParticipant returns the participant that is not the given user.
// The caller must ensure the user participates in the match.
func (m *Match) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if m.UserA == userID {
		return m.UserB
	}

	return m.UserA
}
