package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nearnow/config"
	"nearnow/internal/domain/entity"
	"nearnow/internal/domain/repository"
	"nearnow/internal/domain/service"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type presenceService struct {
	presenceRepo    repository.PresenceRepository
	presenceChannel service.PresenceChannel
	logger          *slog.Logger

	minGap   time.Duration
	interval time.Duration

	// lastDurable throttles durable writes per user. The first heartbeat
	// always writes; later ones write only after minGap has elapsed.
	lastDurableMu sync.Mutex
	lastDurable   map[uuid.UUID]time.Time

	cancelLoop context.CancelFunc
}

// PresenceServiceParams holds dependencies for PresenceService, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	Lc fx.Lifecycle

	PresenceRepo    repository.PresenceRepository
	PresenceChannel service.PresenceChannel
	Config          *config.Config
	Logger          *slog.Logger
}

// NewPresenceService creates a new presence tracker instance. An fx lifecycle
// hook runs the periodic re-assertion loop that keeps recently active users'
// durable rows fresh between throttled heartbeats.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	s := &presenceService{
		presenceRepo:    params.PresenceRepo,
		presenceChannel: params.PresenceChannel,
		logger:          params.Logger,
		minGap:          time.Duration(params.Config.Presence.HeartbeatMinGapSec) * time.Second,
		interval:        time.Duration(params.Config.Presence.HeartbeatIntervalSec) * time.Second,
		lastDurable:     make(map[uuid.UUID]time.Time),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			loopCtx, cancel := context.WithCancel(context.Background())
			s.cancelLoop = cancel
			go s.reassertLoop(loopCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			if s.cancelLoop != nil {
				s.cancelLoop()
			}

			return nil
		},
	})

	return s
}

// Heartbeat asserts that the user is online. Durable writes are throttled;
// the ephemeral announcement always goes out.
func (s *presenceService) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	now := time.Now().UTC()

	if s.shouldWriteDurable(userID, now) {
		if err := s.presenceRepo.UpsertPresence(ctx, &entity.PresenceState{
			UserID:     userID,
			IsOnline:   true,
			LastSeenAt: now,
		}); err != nil {
			s.clearThrottle(userID)

			return errors.Wrap(err, "failed to upsert presence state")
		}
	}

	if err := s.presenceChannel.Publish(ctx, &service.PresenceEvent{
		UserID:   userID,
		IsOnline: true,
		At:       now,
	}); err != nil {
		// The durable row already holds the truth; peers fall back to it.
		s.logger.Warn("failed to publish presence event",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (s *presenceService) shouldWriteDurable(userID uuid.UUID, now time.Time) bool {
	s.lastDurableMu.Lock()
	defer s.lastDurableMu.Unlock()

	last, seen := s.lastDurable[userID]
	if seen && now.Sub(last) < s.minGap {
		return false
	}

	s.lastDurable[userID] = now

	return true
}

func (s *presenceService) clearThrottle(userID uuid.UUID) {
	s.lastDurableMu.Lock()
	defer s.lastDurableMu.Unlock()

	delete(s.lastDurable, userID)
}

// SetOffline marks the user offline immediately, bypassing the throttle.
func (s *presenceService) SetOffline(ctx context.Context, userID uuid.UUID) error {
	now := time.Now().UTC()

	if err := s.presenceRepo.UpsertPresence(ctx, &entity.PresenceState{
		UserID:     userID,
		IsOnline:   false,
		LastSeenAt: now,
	}); err != nil {
		return errors.Wrap(err, "failed to upsert presence state")
	}

	s.clearThrottle(userID)

	if err := s.presenceChannel.Publish(ctx, &service.PresenceEvent{
		UserID:   userID,
		IsOnline: false,
		At:       now,
	}); err != nil {
		s.logger.Warn("failed to publish presence event",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// IsOnline reports the user's durable online flag.
func (s *presenceService) IsOnline(ctx context.Context, userID uuid.UUID) (bool, error) {
	state, err := s.presenceRepo.FindPresenceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPresenceNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find presence by user")
	}

	return state.IsOnline, nil
}

// GetPresence returns the durable presence rows for a set of users.
func (s *presenceService) GetPresence(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PresenceState, error) {
	states, err := s.presenceRepo.FindPresenceByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find presence by users")
	}

	return states, nil
}

// reassertLoop periodically refreshes last_seen_at for users whose heartbeats
// are being throttled, so an active user's durable row never looks stale.
func (s *presenceService) reassertLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reassertActive(ctx)
		}
	}
}

func (s *presenceService) reassertActive(ctx context.Context) {
	now := time.Now().UTC()

	s.lastDurableMu.Lock()
	active := make([]uuid.UUID, 0, len(s.lastDurable))
	for userID, last := range s.lastDurable {
		if now.Sub(last) > 2*s.interval {
			// Gone quiet; stop re-asserting and let the row age out.
			delete(s.lastDurable, userID)

			continue
		}
		active = append(active, userID)
	}
	s.lastDurableMu.Unlock()

	for _, userID := range active {
		if err := s.presenceRepo.UpsertPresence(ctx, &entity.PresenceState{
			UserID:     userID,
			IsOnline:   true,
			LastSeenAt: now,
		}); err != nil {
			s.logger.Warn("failed to re-assert presence",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
