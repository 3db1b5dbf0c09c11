package entity

import (
	"time"

	"github.com/google/uuid"
)

// SwipeKind enumerates the directional intents a user can express.
type SwipeKind string

const (
	SwipeKindLike      SwipeKind = "like"
	SwipeKindPass      SwipeKind = "pass"
	SwipeKindSuperLike SwipeKind = "super_like"
)

// Valid reports whether the kind is one of the known swipe kinds.
func (k SwipeKind) Valid() bool {
	switch k {
	case SwipeKindLike, SwipeKindPass, SwipeKindSuperLike:
		return true
	default:
		return false
	}
}

// IsInterest reports whether the kind expresses interest and therefore
// participates in mutual-match evaluation. A pass never does.
func (k SwipeKind) IsInterest() bool {
	return k == SwipeKindLike || k == SwipeKindSuperLike
}

// Swipe represents one user's most recent intent toward another. Unique per
// ordered pair (SwiperID, SwipedID); a new swipe replaces the previous one.
type Swipe struct {
	SwiperID  uuid.UUID `json:"swiper_id"`  // The user expressing the intent.
	SwipedID  uuid.UUID `json:"swiped_id"`  // The user the intent is directed at.
	Kind      SwipeKind `json:"kind"`       // like, pass or super_like.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last upsert.
}
