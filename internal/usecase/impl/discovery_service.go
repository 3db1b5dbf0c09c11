package impl

import (
	"context"
	"sort"

	"nearnow/config"
	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/domain/service"
	"nearnow/internal/geo"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type discoveryService struct {
	locationRepo repository.LocationRepository
	presenceRepo repository.PresenceRepository
	blockChecker service.BlockChecker
	config       *config.Config
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	PresenceRepo repository.PresenceRepository
	BlockChecker service.BlockChecker
	Config       *config.Config
}

// NewDiscoveryService creates a new proximity query service instance
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		locationRepo: params.LocationRepo,
		presenceRepo: params.PresenceRepo,
		blockChecker: params.BlockChecker,
		config:       params.Config,
	}
}

// FindNearby returns users within the radius of the given point, closest first.
func (s *discoveryService) FindNearby(ctx context.Context, requesterID uuid.UUID, input *usecase.FindNearbyInput) ([]*entity.NearbyUser, error) {
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	cfg := s.config.Discovery

	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = cfg.RadiusKm
	}
	if radiusKm > cfg.MaxDistanceKm {
		radiusKm = cfg.MaxDistanceKm
	}

	limit := input.Limit
	if limit <= 0 || limit > cfg.MaxResults {
		limit = cfg.MaxResults
	}

	candidates, err := s.locationRepo.FindCandidateLocations(ctx, requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate locations")
	}

	blockedIDs, err := s.blockChecker.BlockedUserIDs(ctx, requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blocked users")
	}
	blocked := make(map[uuid.UUID]struct{}, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = struct{}{}
	}

	// Distance filtering works on true coordinates; fuzzing applies only to
	// what gets displayed.
	type scored struct {
		location *entity.UserLocation
		distance float64
	}
	inRange := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if _, isBlocked := blocked[candidate.UserID]; isBlocked {
			continue
		}

		distance := geo.DistanceKm(input.Latitude, input.Longitude, candidate.Latitude, candidate.Longitude)
		if distance > radiusKm {
			continue
		}

		inRange = append(inRange, scored{location: candidate, distance: distance})
	}

	sort.Slice(inRange, func(i, j int) bool {
		if inRange[i].distance != inRange[j].distance {
			return inRange[i].distance < inRange[j].distance
		}

		// Distance ties resolve by ascending user ID so pagination is stable.
		return inRange[i].location.UserID.String() < inRange[j].location.UserID.String()
	})

	if len(inRange) > limit {
		inRange = inRange[:limit]
	}

	userIDs := make([]uuid.UUID, 0, len(inRange))
	for _, hit := range inRange {
		userIDs = append(userIDs, hit.location.UserID)
	}

	presenceByUser := make(map[uuid.UUID]*entity.PresenceState, len(userIDs))
	states, err := s.presenceRepo.FindPresenceByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load presence for nearby users")
	}
	for _, state := range states {
		presenceByUser[state.UserID] = state
	}

	results := make([]*entity.NearbyUser, 0, len(inRange))
	for _, hit := range inRange {
		fuzzed := geo.Fuzz(orb.Point{hit.location.Longitude, hit.location.Latitude}, cfg.FuzzRadiusMeters)

		nearby := &entity.NearbyUser{
			UserID:     hit.location.UserID,
			DistanceKm: hit.distance,
			Latitude:   fuzzed.Lat(),
			Longitude:  fuzzed.Lon(),
		}
		if state, ok := presenceByUser[hit.location.UserID]; ok {
			nearby.IsOnline = state.IsOnline
			nearby.LastSeenAt = state.LastSeenAt
		}

		results = append(results, nearby)
	}

	return results, nil
}
