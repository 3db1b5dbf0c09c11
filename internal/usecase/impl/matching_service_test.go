package impl

import (
	"context"
	"testing"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	mockRepo "nearnow/internal/mocks/repository"
	mockSvc "nearnow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchingTestMocks struct {
	txManager      *mockRepo.MockTransactionManager
	txFactory      *mockRepo.MockRepositoryFactory
	txSwipeRepo    *mockRepo.MockSwipeRepository
	txMatchRepo    *mockRepo.MockMatchRepository
	swipeRepo      *mockRepo.MockSwipeRepository
	matchRepo      *mockRepo.MockMatchRepository
	messageRepo    *mockRepo.MockMessageRepository
	blockChecker   *mockSvc.MockBlockChecker
	feed           *mockSvc.MockRealtimeFeed
	eventPublisher *mockSvc.MockEventPublisher
}

func newMatchingService(t *testing.T) (*matchingTestMocks, *matchingService) {
	m := &matchingTestMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		txFactory:      mockRepo.NewMockRepositoryFactory(t),
		txSwipeRepo:    mockRepo.NewMockSwipeRepository(t),
		txMatchRepo:    mockRepo.NewMockMatchRepository(t),
		swipeRepo:      mockRepo.NewMockSwipeRepository(t),
		matchRepo:      mockRepo.NewMockMatchRepository(t),
		messageRepo:    mockRepo.NewMockMessageRepository(t),
		blockChecker:   mockSvc.NewMockBlockChecker(t),
		feed:           mockSvc.NewMockRealtimeFeed(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}

	service := NewMatchingService(MatchingServiceParams{
		TxManager:      m.txManager,
		SwipeRepo:      m.swipeRepo,
		MatchRepo:      m.matchRepo,
		MessageRepo:    m.messageRepo,
		BlockChecker:   m.blockChecker,
		Feed:           m.feed,
		EventPublisher: m.eventPublisher,
		Logger:         testLogger(),
	})

	return m, service.(*matchingService)
}

// expectTransaction wires the transaction manager to run the supplied
// function against the tx-scoped repository mocks.
func (m *matchingTestMocks) expectTransaction(ctx context.Context) {
	m.txFactory.EXPECT().NewSwipeRepository().Return(m.txSwipeRepo)
	m.txFactory.EXPECT().NewMatchRepository().Return(m.txMatchRepo)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.txFactory)
		})
}

func TestMatchingService_Swipe_SelfSwipe(t *testing.T) {
	_, service := newMatchingService(t)

	userID := uuid.New()
	result, err := service.Swipe(context.Background(), userID, userID, entity.SwipeKindLike)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrSelfSwipe)
}

func TestMatchingService_Swipe_InvalidKind(t *testing.T) {
	_, service := newMatchingService(t)

	result, err := service.Swipe(context.Background(), uuid.New(), uuid.New(), entity.SwipeKind("wink"))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSwipeKind)
}

func TestMatchingService_Swipe_BlockedPair(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()

	m.blockChecker.EXPECT().
		IsBlocked(ctx, swiperID, swipedID).
		Return(true, nil)

	result, err := service.Swipe(ctx, swiperID, swipedID, entity.SwipeKindLike)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBlockedPair)
}

func TestMatchingService_Swipe_PassNeverMatches(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()

	m.blockChecker.EXPECT().
		IsBlocked(ctx, swiperID, swipedID).
		Return(false, nil)

	m.expectTransaction(ctx)

	m.txSwipeRepo.EXPECT().
		UpsertSwipe(ctx, mock.AnythingOfType("*entity.Swipe")).
		Return(nil)

	result, err := service.Swipe(ctx, swiperID, swipedID, entity.SwipeKindPass)
	require.NoError(t, err)
	assert.Nil(t, result.Match)
	assert.False(t, result.IsNewMatch)
}

func TestMatchingService_Swipe_LikeWithoutReciprocal(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()

	m.blockChecker.EXPECT().
		IsBlocked(ctx, swiperID, swipedID).
		Return(false, nil)

	m.expectTransaction(ctx)

	m.txSwipeRepo.EXPECT().
		UpsertSwipe(ctx, mock.AnythingOfType("*entity.Swipe")).
		Return(nil)

	m.txSwipeRepo.EXPECT().
		FindSwipe(ctx, swipedID, swiperID).
		Return(nil, repository.ErrSwipeNotFound)

	result, err := service.Swipe(ctx, swiperID, swipedID, entity.SwipeKindLike)
	require.NoError(t, err)
	assert.Nil(t, result.Match)
	assert.False(t, result.IsNewMatch)
}

func TestMatchingService_Swipe_ReciprocalPassDoesNotMatch(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()

	m.blockChecker.EXPECT().
		IsBlocked(ctx, swiperID, swipedID).
		Return(false, nil)

	m.expectTransaction(ctx)

	m.txSwipeRepo.EXPECT().
		UpsertSwipe(ctx, mock.AnythingOfType("*entity.Swipe")).
		Return(nil)

	m.txSwipeRepo.EXPECT().
		FindSwipe(ctx, swipedID, swiperID).
		Return(&entity.Swipe{SwiperID: swipedID, SwipedID: swiperID, Kind: entity.SwipeKindPass}, nil)

	result, err := service.Swipe(ctx, swiperID, swipedID, entity.SwipeKindLike)
	require.NoError(t, err)
	assert.Nil(t, result.Match)
	assert.False(t, result.IsNewMatch)
}

func TestMatchingService_Swipe_MutualLikeCreatesMatch(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()
	userA, userB := entity.CanonicalPair(swiperID, swipedID)

	m.blockChecker.EXPECT().
		IsBlocked(ctx, swiperID, swipedID).
		Return(false, nil)

	m.expectTransaction(ctx)

	m.txSwipeRepo.EXPECT().
		UpsertSwipe(ctx, mock.AnythingOfType("*entity.Swipe")).
		Return(nil)

	m.txSwipeRepo.EXPECT().
		FindSwipe(ctx, swipedID, swiperID).
		Return(&entity.Swipe{SwiperID: swipedID, SwipedID: swiperID, Kind: entity.SwipeKindLike}, nil)

	m.txMatchRepo.EXPECT().
		FindMatchByPair(ctx, swiperID, swipedID).
		Return(nil, repository.ErrMatchNotFound)

	m.txMatchRepo.EXPECT().
		CreateMatch(ctx, mock.AnythingOfType("*entity.Match")).
		Return(nil)

	m.feed.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	m.eventPublisher.EXPECT().
		PublishMatchPush(ctx, mock.AnythingOfType("*service.MatchPushEvent")).
		Return(nil)

	result, err := service.Swipe(ctx, swiperID, swipedID, entity.SwipeKindLike)
	require.NoError(t, err)
	require.NotNil(t, result.Match)
	assert.True(t, result.IsNewMatch)
	assert.Equal(t, userA, result.Match.UserA)
	assert.Equal(t, userB, result.Match.UserB)
	assert.True(t, result.Match.IsActive)
}

func TestMatchingService_Swipe_DuplicateCreateAdoptsSurvivor(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()
	userA, userB := entity.CanonicalPair(swiperID, swipedID)
	survivor := &entity.Match{ID: uuid.New(), UserA: userA, UserB: userB, IsActive: true}

	m.blockChecker.EXPECT().
		IsBlocked(ctx, swiperID, swipedID).
		Return(false, nil)

	m.expectTransaction(ctx)

	m.txSwipeRepo.EXPECT().
		UpsertSwipe(ctx, mock.AnythingOfType("*entity.Swipe")).
		Return(nil)

	m.txSwipeRepo.EXPECT().
		FindSwipe(ctx, swipedID, swiperID).
		Return(&entity.Swipe{SwiperID: swipedID, SwipedID: swiperID, Kind: entity.SwipeKindSuperLike}, nil)

	m.txMatchRepo.EXPECT().
		FindMatchByPair(ctx, swiperID, swipedID).
		Return(nil, repository.ErrMatchNotFound).
		Once()

	m.txMatchRepo.EXPECT().
		CreateMatch(ctx, mock.AnythingOfType("*entity.Match")).
		Return(repository.ErrDuplicateMatch)

	m.txMatchRepo.EXPECT().
		FindMatchByPair(ctx, swiperID, swipedID).
		Return(survivor, nil).
		Once()

	result, err := service.Swipe(ctx, swiperID, swipedID, entity.SwipeKindLike)
	require.NoError(t, err)
	assert.Equal(t, survivor, result.Match)
	assert.False(t, result.IsNewMatch)
}

func TestMatchingService_Swipe_ReactivatesClosedMatch(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()
	userA, userB := entity.CanonicalPair(swiperID, swipedID)
	closed := &entity.Match{ID: uuid.New(), UserA: userA, UserB: userB, IsActive: false}

	m.blockChecker.EXPECT().
		IsBlocked(ctx, swiperID, swipedID).
		Return(false, nil)

	m.expectTransaction(ctx)

	m.txSwipeRepo.EXPECT().
		UpsertSwipe(ctx, mock.AnythingOfType("*entity.Swipe")).
		Return(nil)

	m.txSwipeRepo.EXPECT().
		FindSwipe(ctx, swipedID, swiperID).
		Return(&entity.Swipe{SwiperID: swipedID, SwipedID: swiperID, Kind: entity.SwipeKindLike}, nil)

	m.txMatchRepo.EXPECT().
		FindMatchByPair(ctx, swiperID, swipedID).
		Return(closed, nil)

	m.txMatchRepo.EXPECT().
		UpdateMatchStatus(ctx, closed.ID, true).
		Return(true, nil)

	m.feed.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	m.eventPublisher.EXPECT().
		PublishMatchPush(ctx, mock.AnythingOfType("*service.MatchPushEvent")).
		Return(nil)

	result, err := service.Swipe(ctx, swiperID, swipedID, entity.SwipeKindLike)
	require.NoError(t, err)
	assert.True(t, result.IsNewMatch)
	assert.True(t, result.Match.IsActive)
	assert.Equal(t, closed.ID, result.Match.ID)
}

func TestMatchingService_Unmatch_Success(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := &entity.Match{ID: uuid.New(), UserA: userID, UserB: uuid.New(), IsActive: true}

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	m.matchRepo.EXPECT().
		UpdateMatchStatus(ctx, match.ID, false).
		Return(true, nil)

	m.feed.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	require.NoError(t, service.Unmatch(ctx, match.ID, userID))
}

func TestMatchingService_Unmatch_LostRacePublishesNothing(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := &entity.Match{ID: uuid.New(), UserA: userID, UserB: uuid.New(), IsActive: true}

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	// The other participant closed the match between the read and the update.
	// The winner already published the closed event; publishing again here
	// would deliver a duplicate to every open stream.
	m.matchRepo.EXPECT().
		UpdateMatchStatus(ctx, match.ID, false).
		Return(false, nil)

	require.NoError(t, service.Unmatch(ctx, match.ID, userID))
	m.feed.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMatchingService_Unmatch_NotParticipant(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	match := &entity.Match{ID: uuid.New(), UserA: uuid.New(), UserB: uuid.New(), IsActive: true}

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	err := service.Unmatch(ctx, match.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotMatchParticipant)
}

func TestMatchingService_Unmatch_AlreadyClosedIsNoop(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := &entity.Match{ID: uuid.New(), UserA: userID, UserB: uuid.New(), IsActive: false}

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, match.ID).
		Return(match, nil)

	require.NoError(t, service.Unmatch(ctx, match.ID, userID))
}

func TestMatchingService_Unmatch_NotFound(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	matchID := uuid.New()

	m.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(nil, repository.ErrMatchNotFound)

	err := service.Unmatch(ctx, matchID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
}

func TestMatchingService_ListMatches_AnnotatesUnreadCounts(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	userID := uuid.New()
	matchA := &entity.Match{ID: uuid.New(), UserA: userID, UserB: uuid.New(), IsActive: true}
	matchB := &entity.Match{ID: uuid.New(), UserA: userID, UserB: uuid.New(), IsActive: true}

	m.matchRepo.EXPECT().
		FindActiveMatchesByUser(ctx, userID).
		Return([]*entity.Match{matchA, matchB}, nil)

	m.messageRepo.EXPECT().
		CountUnread(ctx, matchA.ID, userID).
		Return(int64(3), nil)

	m.messageRepo.EXPECT().
		CountUnread(ctx, matchB.ID, userID).
		Return(int64(0), nil)

	matches, err := service.ListMatches(ctx, userID)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(3), matches[0].UnreadCount)
	assert.Equal(t, int64(0), matches[1].UnreadCount)
}

func TestMatchingService_HasLiked(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()

	m.swipeRepo.EXPECT().
		FindSwipe(ctx, swiperID, swipedID).
		Return(&entity.Swipe{SwiperID: swiperID, SwipedID: swipedID, Kind: entity.SwipeKindLike}, nil)

	liked, err := service.HasLiked(ctx, swiperID, swipedID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestMatchingService_HasLiked_NoSwipe(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	swiperID := uuid.New()
	swipedID := uuid.New()

	m.swipeRepo.EXPECT().
		FindSwipe(ctx, swiperID, swipedID).
		Return(nil, repository.ErrSwipeNotFound)

	liked, err := service.HasLiked(ctx, swiperID, swipedID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestMatchingService_GetSwipeStats(t *testing.T) {
	m, service := newMatchingService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.swipeRepo.EXPECT().
		CountSwipesReceived(ctx, userID, entity.SwipeKindLike).
		Return(int64(7), nil)

	m.swipeRepo.EXPECT().
		CountSwipesReceived(ctx, userID, entity.SwipeKindSuperLike).
		Return(int64(2), nil)

	m.matchRepo.EXPECT().
		CountActiveMatchesByUser(ctx, userID).
		Return(int64(3), nil)

	stats, err := service.GetSwipeStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.LikesReceived)
	assert.Equal(t, int64(2), stats.SuperLikesReceived)
	assert.Equal(t, int64(3), stats.ActiveMatches)
}
