package handler

import (
	"fmt"
	"net/http"
	"testing"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	mockUC "nearnow/internal/mocks/usecase"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMatchHandler_Swipe_RecordsLike(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	userID := uuid.New()
	swipedID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/swipes",
		fmt.Sprintf(`{"swiped_id":%q,"kind":"like"}`, swipedID), userID)

	mockMatchingUC.EXPECT().
		Swipe(mock.Anything, userID, swipedID, entity.SwipeKindLike).
		Return(&usecase.SwipeResult{
			Swipe: &entity.Swipe{SwiperID: userID, SwipedID: swipedID, Kind: entity.SwipeKindLike},
		}, nil)

	require.NoError(t, handler.Swipe(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_new_match":false`)
}

func TestMatchHandler_Swipe_ReportsNewMatch(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	userID := uuid.New()
	swipedID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/swipes",
		fmt.Sprintf(`{"swiped_id":%q,"kind":"super_like"}`, swipedID), userID)

	userA, userB := entity.CanonicalPair(userID, swipedID)
	mockMatchingUC.EXPECT().
		Swipe(mock.Anything, userID, swipedID, entity.SwipeKindSuperLike).
		Return(&usecase.SwipeResult{
			Swipe:      &entity.Swipe{SwiperID: userID, SwipedID: swipedID, Kind: entity.SwipeKindSuperLike},
			Match:      &entity.Match{ID: uuid.New(), UserA: userA, UserB: userB, IsActive: true},
			IsNewMatch: true,
		}, nil)

	require.NoError(t, handler.Swipe(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_new_match":true`)
}

func TestMatchHandler_Swipe_RejectsUnknownKind(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	c, rec := newTestContext(t, http.MethodPost, "/swipes",
		fmt.Sprintf(`{"swiped_id":%q,"kind":"wink"}`, uuid.New()), uuid.New())

	require.NoError(t, handler.Swipe(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestMatchHandler_Unmatch_Success(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/matches/"+matchID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	mockMatchingUC.EXPECT().
		Unmatch(mock.Anything, matchID, userID).
		Return(nil)

	require.NoError(t, handler.Unmatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchHandler_Unmatch_NotParticipant(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	userID := uuid.New()
	matchID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/matches/"+matchID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	mockMatchingUC.EXPECT().
		Unmatch(mock.Anything, matchID, userID).
		Return(domainerrors.ErrNotMatchParticipant)

	require.NoError(t, handler.Unmatch(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMatchHandler_Unmatch_InvalidID(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	c, rec := newTestContext(t, http.MethodDelete, "/matches/not-a-uuid", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Unmatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestMatchHandler_ListMatches(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/matches", "", userID)

	matchID := uuid.New()
	mockMatchingUC.EXPECT().
		ListMatches(mock.Anything, userID).
		Return([]*entity.Match{{ID: matchID, IsActive: true}}, nil)

	require.NoError(t, handler.ListMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), matchID.String())
}

func TestMatchHandler_GetSwipeStats(t *testing.T) {
	mockMatchingUC := mockUC.NewMockMatchingUsecase(t)
	handler := &MatchHandler{matchingUC: mockMatchingUC, logger: testLogger()}

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/swipes/stats", "", userID)

	mockMatchingUC.EXPECT().
		GetSwipeStats(mock.Anything, userID).
		Return(&usecase.SwipeStats{LikesReceived: 7, SuperLikesReceived: 2, ActiveMatches: 3}, nil)

	require.NoError(t, handler.GetSwipeStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"likes_received":7`)
}
