package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/domain/service"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type matchingService struct {
	txManager   repository.TransactionManager
	swipeRepo   repository.SwipeRepository
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository

	blockChecker   service.BlockChecker
	feed           service.RealtimeFeed
	eventPublisher service.EventPublisher
	logger         *slog.Logger

	// pairLocks serializes swipe processing per unordered pair so the
	// reciprocal check and match creation form a critical section. The unique
	// pair index backstops concurrent processes this mutex cannot see.
	pairLocksMu sync.Mutex
	pairLocks   map[string]*sync.Mutex
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SwipeRepo      repository.SwipeRepository
	MatchRepo      repository.MatchRepository
	MessageRepo    repository.MessageRepository
	BlockChecker   service.BlockChecker
	Feed           service.RealtimeFeed
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewMatchingService creates a new matching engine instance
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		txManager:      params.TxManager,
		swipeRepo:      params.SwipeRepo,
		matchRepo:      params.MatchRepo,
		messageRepo:    params.MessageRepo,
		blockChecker:   params.BlockChecker,
		feed:           params.Feed,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
		pairLocks:      make(map[string]*sync.Mutex),
	}
}

// lockPair returns the mutex guarding the unordered pair, creating it on
// first use. Locks are never evicted; the key space is bounded by pairs
// actually swiped in this process.
func (s *matchingService) lockPair(a, b uuid.UUID) *sync.Mutex {
	userA, userB := entity.CanonicalPair(a, b)
	key := userA.String() + ":" + userB.String()

	s.pairLocksMu.Lock()
	defer s.pairLocksMu.Unlock()

	lock, ok := s.pairLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.pairLocks[key] = lock
	}

	return lock
}

// Swipe records the swiper's latest intent and evaluates mutual interest.
func (s *matchingService) Swipe(ctx context.Context, swiperID, swipedID uuid.UUID, kind entity.SwipeKind) (*usecase.SwipeResult, error) {
	if swiperID == swipedID {
		return nil, domainerrors.ErrSelfSwipe
	}
	if !kind.Valid() {
		return nil, domainerrors.ErrInvalidSwipeKind
	}

	isBlocked, err := s.blockChecker.IsBlocked(ctx, swiperID, swipedID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check block state")
	}
	if isBlocked {
		return nil, domainerrors.ErrBlockedPair
	}

	lock := s.lockPair(swiperID, swipedID)
	lock.Lock()
	defer lock.Unlock()

	swipe := &entity.Swipe{
		SwiperID: swiperID,
		SwipedID: swipedID,
		Kind:     kind,
	}

	result := &usecase.SwipeResult{Swipe: swipe}

	// The upsert, reciprocal check, and match write commit atomically; a
	// failed reciprocal step must not leave a stray swipe-without-match.
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txSwipeRepo := repoFactory.NewSwipeRepository()
		txMatchRepo := repoFactory.NewMatchRepository()

		if err := txSwipeRepo.UpsertSwipe(ctx, swipe); err != nil {
			return errors.Wrap(err, "failed to upsert swipe")
		}

		// A pass never forms a match.
		if !kind.IsInterest() {
			return nil
		}

		reciprocal, err := txSwipeRepo.FindSwipe(ctx, swipedID, swiperID)
		if err != nil {
			if errors.Is(err, repository.ErrSwipeNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find reciprocal swipe")
		}
		if !reciprocal.Kind.IsInterest() {
			return nil
		}

		match, isNew, err := s.ensureMatch(ctx, txMatchRepo, swiperID, swipedID)
		if err != nil {
			return err
		}

		result.Match = match
		result.IsNewMatch = isNew

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.IsNewMatch {
		s.announceMatch(ctx, result.Match)
	}

	return result, nil
}

// ensureMatch creates the match for the pair, or reactivates the existing row
// after a previous unmatch. At most one row per unordered pair survives.
func (s *matchingService) ensureMatch(ctx context.Context, matchRepo repository.MatchRepository, swiperID, swipedID uuid.UUID) (*entity.Match, bool, error) {
	existing, err := matchRepo.FindMatchByPair(ctx, swiperID, swipedID)
	if err != nil && !errors.Is(err, repository.ErrMatchNotFound) {
		return nil, false, errors.Wrap(err, "failed to find match by pair")
	}

	if existing != nil {
		if existing.IsActive {
			return existing, false, nil
		}

		reactivated, err := matchRepo.UpdateMatchStatus(ctx, existing.ID, true)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to reactivate match")
		}
		existing.IsActive = true
		existing.UpdatedAt = time.Now().UTC()

		return existing, reactivated, nil
	}

	userA, userB := entity.CanonicalPair(swiperID, swipedID)
	match := &entity.Match{
		ID:       uuid.New(),
		UserA:    userA,
		UserB:    userB,
		IsActive: true,
	}

	if err := matchRepo.CreateMatch(ctx, match); err != nil {
		// Another process won the race; the unique index kept the pair
		// single. Adopt the surviving row.
		if errors.Is(err, repository.ErrDuplicateMatch) {
			survivor, findErr := matchRepo.FindMatchByPair(ctx, swiperID, swipedID)
			if findErr != nil {
				return nil, false, errors.Wrap(findErr, "failed to load match after duplicate create")
			}

			return survivor, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to create match")
	}

	return match, true, nil
}

// announceMatch notifies both participants. Best effort; the match row is
// already durable.
func (s *matchingService) announceMatch(ctx context.Context, match *entity.Match) {
	if err := s.feed.Publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventMatchCreated,
		MatchID: match.ID,
	}); err != nil {
		s.logger.Warn("failed to publish match created event",
			slog.String("match_id", match.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	if err := s.eventPublisher.PublishMatchPush(ctx, &service.MatchPushEvent{
		MatchID:   match.ID,
		UserA:     match.UserA,
		UserB:     match.UserB,
		MatchedAt: match.MatchedAt,
	}); err != nil {
		s.logger.Warn("failed to publish match push event",
			slog.String("match_id", match.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Unmatch closes an active match. Closing an already closed match is a no-op.
func (s *matchingService) Unmatch(ctx context.Context, matchID, userID uuid.UUID) error {
	match, err := s.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return domainerrors.ErrMatchNotFound
		}

		return errors.Wrap(err, "failed to find match by ID")
	}

	if !match.Involves(userID) {
		return domainerrors.ErrNotMatchParticipant
	}

	if !match.IsActive {
		return nil
	}

	closed, err := s.matchRepo.UpdateMatchStatus(ctx, matchID, false)
	if err != nil {
		return errors.Wrap(err, "failed to close match")
	}
	// The other participant closed it between the read and the update; they
	// own the closed event.
	if !closed {
		return nil
	}

	if err := s.feed.Publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventMatchClosed,
		MatchID: matchID,
	}); err != nil {
		s.logger.Warn("failed to publish match closed event",
			slog.String("match_id", matchID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// ListMatches returns the user's active matches, most recent first, each
// annotated with the caller's unread message count.
func (s *matchingService) ListMatches(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error) {
	matches, err := s.matchRepo.FindActiveMatchesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active matches by user")
	}

	for _, match := range matches {
		unread, err := s.messageRepo.CountUnread(ctx, match.ID, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count unread messages")
		}
		match.UnreadCount = unread
	}

	return matches, nil
}

// HasLiked reports whether swiperID currently expresses interest in swipedID.
func (s *matchingService) HasLiked(ctx context.Context, swiperID, swipedID uuid.UUID) (bool, error) {
	swipe, err := s.swipeRepo.FindSwipe(ctx, swiperID, swipedID)
	if err != nil {
		if errors.Is(err, repository.ErrSwipeNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find swipe")
	}

	return swipe.Kind.IsInterest(), nil
}

// GetSwipeStats returns counts of interest received and active matches.
func (s *matchingService) GetSwipeStats(ctx context.Context, userID uuid.UUID) (*usecase.SwipeStats, error) {
	likes, err := s.swipeRepo.CountSwipesReceived(ctx, userID, entity.SwipeKindLike)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes received")
	}

	superLikes, err := s.swipeRepo.CountSwipesReceived(ctx, userID, entity.SwipeKindSuperLike)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count super likes received")
	}

	activeMatches, err := s.matchRepo.CountActiveMatchesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active matches")
	}

	return &usecase.SwipeStats{
		LikesReceived:      likes,
		SuperLikesReceived: superLikes,
		ActiveMatches:      activeMatches,
	}, nil
}
