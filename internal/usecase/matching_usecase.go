package usecase

import (
	"context"

	"nearnow/internal/domain/entity"

	"github.com/google/uuid"
)

// SwipeResult is the outcome of recording a swipe. Match is non-nil only
// when the swipe completed (or revived) a mutual match.
type SwipeResult struct {
	Swipe      *entity.Swipe `json:"swipe"`
	Match      *entity.Match `json:"match,omitempty"`
	IsNewMatch bool          `json:"is_new_match"`
}

// SwipeStats summarizes the interest a user has received.
type SwipeStats struct {
	LikesReceived      int64 `json:"likes_received"`
	SuperLikesReceived int64 `json:"super_likes_received"`
	ActiveMatches      int64 `json:"active_matches"`
}

// MatchingUsecase defines the interface for swipe and match use cases.
type MatchingUsecase interface {
	// Swipe records the swiper's latest intent toward another user. A like or
	// super-like checks for reciprocity and creates (or reactivates) the
	// match for the pair. Repeating a swipe is safe and never duplicates a
	// match.
	Swipe(ctx context.Context, swiperID, swipedID uuid.UUID, kind entity.SwipeKind) (*SwipeResult, error)

	// Unmatch closes an active match. Only a participant may unmatch;
	// messages are retained.
	Unmatch(ctx context.Context, matchID, userID uuid.UUID) error

	// ListMatches returns the user's active matches, most recent first, each
	// annotated with the caller's unread message count.
	ListMatches(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error)

	// HasLiked reports whether swiperID currently expresses interest in swipedID.
	HasLiked(ctx context.Context, swiperID, swipedID uuid.UUID) (bool, error)

	// GetSwipeStats returns counts of interest received and active matches.
	GetSwipeStats(ctx context.Context, userID uuid.UUID) (*SwipeStats, error)
}
