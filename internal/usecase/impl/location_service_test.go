package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	mockRepo "nearnow/internal/mocks/repository"
	mockUsecase "nearnow/internal/mocks/usecase"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_Report_Success(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	capturedAt := time.Now().UTC().Add(-time.Second)

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	mockPresence.EXPECT().
		Heartbeat(ctx, userID).
		Return(nil)

	accepted, err := service.Report(ctx, userID, &usecase.ReportLocationInput{
		Latitude:   43.65,
		Longitude:  -79.38,
		AccuracyM:  12.5,
		CapturedAt: capturedAt,
	})
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestLocationService_Report_StaleDiscarded(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(repository.ErrStaleLocation)

	accepted, err := service.Report(ctx, userID, &usecase.ReportLocationInput{
		Latitude:   43.65,
		Longitude:  -79.38,
		CapturedAt: time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestLocationService_Report_InvalidCoordinates(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	accepted, err := service.Report(context.Background(), uuid.New(), &usecase.ReportLocationInput{
		Latitude:  91.0,
		Longitude: 0.0,
	})
	assert.False(t, accepted)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestLocationService_Report_ZeroCapturedAtDefaultsToNow(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	before := time.Now().UTC()

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		RunAndReturn(func(_ context.Context, location *entity.UserLocation) error {
			assert.False(t, location.CapturedAt.Before(before))

			return nil
		})

	mockPresence.EXPECT().
		Heartbeat(ctx, userID).
		Return(nil)

	accepted, err := service.Report(ctx, userID, &usecase.ReportLocationInput{
		Latitude:  43.65,
		Longitude: -79.38,
	})
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestLocationService_Report_HeartbeatFailureDoesNotVoidReport(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	mockPresence.EXPECT().
		Heartbeat(ctx, userID).
		Return(errors.New("presence store down"))

	accepted, err := service.Report(ctx, userID, &usecase.ReportLocationInput{
		Latitude:   43.65,
		Longitude:  -79.38,
		CapturedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestLocationService_MarkOffline(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockPresence.EXPECT().
		SetOffline(ctx, userID).
		Return(nil)

	require.NoError(t, service.MarkOffline(ctx, userID))
}

func TestLocationService_GetLocation_Success(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.UserLocation{
		UserID:     userID,
		Latitude:   43.65,
		Longitude:  -79.38,
		CapturedAt: time.Now().UTC(),
	}

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(stored, nil)

	location, err := service.GetLocation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, location)
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockPresence := mockUsecase.NewMockPresenceUsecase(t)
	service := NewLocationService(LocationServiceParams{
		LocationRepo: mockLocationRepo,
		Presence:     mockPresence,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(nil, repository.ErrLocationNotFound)

	location, err := service.GetLocation(ctx, userID)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}
