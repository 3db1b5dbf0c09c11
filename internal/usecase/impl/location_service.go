// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"
	"time"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/geo"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	locationRepo repository.LocationRepository
	presence     usecase.PresenceUsecase
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Presence     usecase.PresenceUsecase
	Logger       *slog.Logger
}

// NewLocationService creates a new location ingestion service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		presence:     params.Presence,
		logger:       params.Logger,
	}
}

// Report ingests a location report. Stale reports (captured before the stored
// location) are discarded and reported as accepted=false, not as an error.
func (s *locationService) Report(ctx context.Context, userID uuid.UUID, input *usecase.ReportLocationInput) (bool, error) {
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return false, domainerrors.ErrInvalidCoordinates
	}

	capturedAt := input.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now().UTC()
	}

	location := &entity.UserLocation{
		UserID:     userID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		AccuracyM:  input.AccuracyM,
		CapturedAt: capturedAt,
	}

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		if errors.Is(err, repository.ErrStaleLocation) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to upsert location")
	}

	// An accepted report doubles as a presence signal. Presence failures
	// must not void the already persisted location.
	if err := s.presence.Heartbeat(ctx, userID); err != nil {
		s.logger.Warn("presence heartbeat after location report failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	return true, nil
}

// MarkOffline records that the user left.
func (s *locationService) MarkOffline(ctx context.Context, userID uuid.UUID) error {
	if err := s.presence.SetOffline(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark user offline")
	}

	return nil
}

// GetLocation returns the user's stored last-known location.
func (s *locationService) GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	location, err := s.locationRepo.FindLocationByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user")
	}

	return location, nil
}
