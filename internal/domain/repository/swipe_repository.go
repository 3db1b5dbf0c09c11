package repository

import (
	"context"

	"nearnow/internal/domain/entity"
	"nearnow/internal/errors"

	"github.com/google/uuid"
)

// ErrSwipeNotFound is returned when no swipe exists for the ordered pair.
var ErrSwipeNotFound = errors.New("swipe not found")

// SwipeRepository defines the interface for swipe-related database operations.
type SwipeRepository interface {
	// UpsertSwipe creates or replaces the swipe for the ordered pair
	// (SwiperID, SwipedID). Repeating the same swipe is safe.
	UpsertSwipe(ctx context.Context, swipe *entity.Swipe) error

	// FindSwipe retrieves the current swipe for the ordered pair.
	FindSwipe(ctx context.Context, swiperID, swipedID uuid.UUID) (*entity.Swipe, error)

	// CountSwipesReceived counts swipes of the given kind directed at a user.
	CountSwipesReceived(ctx context.Context, swipedID uuid.UUID, kind entity.SwipeKind) (int64, error)
}
