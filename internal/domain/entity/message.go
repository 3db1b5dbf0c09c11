package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind enumerates the supported message payload kinds.
type MessageKind string

const (
	MessageKindText     MessageKind = "text"
	MessageKindImage    MessageKind = "image"    // Content holds the stored image URL.
	MessageKindLocation MessageKind = "location" // Content holds "lat,lon" in decimal degrees.
)

// Valid reports whether the kind is one of the known message kinds.
func (k MessageKind) Valid() bool {
	switch k {
	case MessageKindText, MessageKindImage, MessageKindLocation:
		return true
	default:
		return false
	}
}

// Message represents one chat message inside a match. Append-only; the only
// mutation after creation is ReadAt transitioning once from nil to a timestamp.
type Message struct {
	ID       uuid.UUID   `json:"id"`        // The Global Unique Identifier (GUID) for the message.
	MatchID  uuid.UUID   `json:"match_id"`  // The match that owns this message.
	SenderID uuid.UUID   `json:"sender_id"` // The participant who sent it.
	Content  string      `json:"content"`   // Payload; interpretation depends on Kind.
	Kind     MessageKind `json:"kind"`      // text, image or location.
	SentAt   time.Time   `json:"sent_at"`   // Server-side send timestamp; strictly increasing per match.
	ReadAt   *time.Time  `json:"read_at"`   // Set once by the recipient's read receipt; nil while unread.
}
