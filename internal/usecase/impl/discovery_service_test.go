package impl

import (
	"context"
	"testing"
	"time"

	"nearnow/config"
	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	mockRepo "nearnow/internal/mocks/repository"
	mockSvc "nearnow/internal/mocks/service"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discoveryTestConfig() *config.Config {
	return &config.Config{
		Discovery: &config.DiscoveryConfig{
			RadiusKm:         5.0,
			MaxDistanceKm:    50.0,
			MaxResults:       50,
			FuzzRadiusMeters: 0,
		},
	}
}

func candidateAt(lat, lon float64) *entity.UserLocation {
	return &entity.UserLocation{
		UserID:     uuid.New(),
		Latitude:   lat,
		Longitude:  lon,
		CapturedAt: time.Now().UTC(),
	}
}

func TestDiscoveryService_FindNearby_SortsByDistance(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)
	mockBlockChecker := mockSvc.NewMockBlockChecker(t)
	service := NewDiscoveryService(DiscoveryServiceParams{
		LocationRepo: mockLocationRepo,
		PresenceRepo: mockPresenceRepo,
		BlockChecker: mockBlockChecker,
		Config:       discoveryTestConfig(),
	})

	ctx := context.Background()
	requesterID := uuid.New()

	near := candidateAt(43.6510, -79.3800)
	far := candidateAt(43.6700, -79.3800)

	mockLocationRepo.EXPECT().
		FindCandidateLocations(ctx, requesterID).
		Return([]*entity.UserLocation{far, near}, nil)

	mockBlockChecker.EXPECT().
		BlockedUserIDs(ctx, requesterID).
		Return(nil, nil)

	mockPresenceRepo.EXPECT().
		FindPresenceByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	results, err := service.FindNearby(ctx, requesterID, &usecase.FindNearbyInput{
		Latitude:  43.6500,
		Longitude: -79.3800,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, near.UserID, results[0].UserID)
	assert.Equal(t, far.UserID, results[1].UserID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
}

func TestDiscoveryService_FindNearby_FiltersOutOfRadius(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)
	mockBlockChecker := mockSvc.NewMockBlockChecker(t)
	service := NewDiscoveryService(DiscoveryServiceParams{
		LocationRepo: mockLocationRepo,
		PresenceRepo: mockPresenceRepo,
		BlockChecker: mockBlockChecker,
		Config:       discoveryTestConfig(),
	})

	ctx := context.Background()
	requesterID := uuid.New()

	inRange := candidateAt(43.6510, -79.3800)
	// Roughly 55 km north; outside even a maxed-out radius request.
	outOfRange := candidateAt(44.1500, -79.3800)

	mockLocationRepo.EXPECT().
		FindCandidateLocations(ctx, requesterID).
		Return([]*entity.UserLocation{inRange, outOfRange}, nil)

	mockBlockChecker.EXPECT().
		BlockedUserIDs(ctx, requesterID).
		Return(nil, nil)

	mockPresenceRepo.EXPECT().
		FindPresenceByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	results, err := service.FindNearby(ctx, requesterID, &usecase.FindNearbyInput{
		Latitude:  43.6500,
		Longitude: -79.3800,
		RadiusKm:  100.0, // capped to MaxDistanceKm
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, inRange.UserID, results[0].UserID)
}

func TestDiscoveryService_FindNearby_ExcludesBlockedUsers(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)
	mockBlockChecker := mockSvc.NewMockBlockChecker(t)
	service := NewDiscoveryService(DiscoveryServiceParams{
		LocationRepo: mockLocationRepo,
		PresenceRepo: mockPresenceRepo,
		BlockChecker: mockBlockChecker,
		Config:       discoveryTestConfig(),
	})

	ctx := context.Background()
	requesterID := uuid.New()

	visible := candidateAt(43.6510, -79.3800)
	blocked := candidateAt(43.6505, -79.3800)

	mockLocationRepo.EXPECT().
		FindCandidateLocations(ctx, requesterID).
		Return([]*entity.UserLocation{visible, blocked}, nil)

	mockBlockChecker.EXPECT().
		BlockedUserIDs(ctx, requesterID).
		Return([]uuid.UUID{blocked.UserID}, nil)

	mockPresenceRepo.EXPECT().
		FindPresenceByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	results, err := service.FindNearby(ctx, requesterID, &usecase.FindNearbyInput{
		Latitude:  43.6500,
		Longitude: -79.3800,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, visible.UserID, results[0].UserID)
}

func TestDiscoveryService_FindNearby_TruncatesToLimit(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)
	mockBlockChecker := mockSvc.NewMockBlockChecker(t)
	service := NewDiscoveryService(DiscoveryServiceParams{
		LocationRepo: mockLocationRepo,
		PresenceRepo: mockPresenceRepo,
		BlockChecker: mockBlockChecker,
		Config:       discoveryTestConfig(),
	})

	ctx := context.Background()
	requesterID := uuid.New()

	candidates := []*entity.UserLocation{
		candidateAt(43.6510, -79.3800),
		candidateAt(43.6520, -79.3800),
		candidateAt(43.6530, -79.3800),
	}

	mockLocationRepo.EXPECT().
		FindCandidateLocations(ctx, requesterID).
		Return(candidates, nil)

	mockBlockChecker.EXPECT().
		BlockedUserIDs(ctx, requesterID).
		Return(nil, nil)

	mockPresenceRepo.EXPECT().
		FindPresenceByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	results, err := service.FindNearby(ctx, requesterID, &usecase.FindNearbyInput{
		Latitude:  43.6500,
		Longitude: -79.3800,
		Limit:     2,
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDiscoveryService_FindNearby_MergesPresence(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)
	mockBlockChecker := mockSvc.NewMockBlockChecker(t)
	service := NewDiscoveryService(DiscoveryServiceParams{
		LocationRepo: mockLocationRepo,
		PresenceRepo: mockPresenceRepo,
		BlockChecker: mockBlockChecker,
		Config:       discoveryTestConfig(),
	})

	ctx := context.Background()
	requesterID := uuid.New()

	online := candidateAt(43.6510, -79.3800)
	offline := candidateAt(43.6520, -79.3800)
	lastSeen := time.Now().UTC().Add(-time.Minute)

	mockLocationRepo.EXPECT().
		FindCandidateLocations(ctx, requesterID).
		Return([]*entity.UserLocation{online, offline}, nil)

	mockBlockChecker.EXPECT().
		BlockedUserIDs(ctx, requesterID).
		Return(nil, nil)

	mockPresenceRepo.EXPECT().
		FindPresenceByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.PresenceState{
			{UserID: online.UserID, IsOnline: true, LastSeenAt: lastSeen},
		}, nil)

	results, err := service.FindNearby(ctx, requesterID, &usecase.FindNearbyInput{
		Latitude:  43.6500,
		Longitude: -79.3800,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].IsOnline)
	assert.Equal(t, lastSeen, results[0].LastSeenAt)
	assert.False(t, results[1].IsOnline)
}

func TestDiscoveryService_FindNearby_InvalidCoordinates(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)
	mockBlockChecker := mockSvc.NewMockBlockChecker(t)
	service := NewDiscoveryService(DiscoveryServiceParams{
		LocationRepo: mockLocationRepo,
		PresenceRepo: mockPresenceRepo,
		BlockChecker: mockBlockChecker,
		Config:       discoveryTestConfig(),
	})

	results, err := service.FindNearby(context.Background(), uuid.New(), &usecase.FindNearbyInput{
		Latitude:  0.0,
		Longitude: 181.0,
	})
	assert.Nil(t, results)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}
