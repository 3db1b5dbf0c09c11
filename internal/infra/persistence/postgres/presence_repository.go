package postgres

import (
	"context"

	"nearnow/internal/domain/entity"
	"nearnow/internal/domain/repository"
	"nearnow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// presenceRepository implements the repository.PresenceRepository interface.
type presenceRepository struct {
	db *gorm.DB
}

// NewPresenceRepository is the constructor for presenceRepository.
func NewPresenceRepository(db *gorm.DB) repository.PresenceRepository {
	return &presenceRepository{
		db: db,
	}
}

// UpsertPresence writes the user's presence row, replacing any prior one.
func (repo *presenceRepository) UpsertPresence(ctx context.Context, state *entity.PresenceState) error {
	stateM := fromPresenceDomain(state)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_online", "last_seen_at"}),
		}).
		Create(stateM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert presence state")
	}

	return nil
}

// FindPresenceByUser retrieves the presence row for a user.
func (repo *presenceRepository) FindPresenceByUser(ctx context.Context, userID uuid.UUID) (*entity.PresenceState, error) {
	var stateM model.PresenceStateModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPresenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find presence by user")
	}

	return toPresenceDomain(&stateM), nil
}

// FindPresenceByUsers retrieves presence rows for a set of users.
func (repo *presenceRepository) FindPresenceByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PresenceState, error) {
	if len(userIDs) == 0 {
		return []*entity.PresenceState{}, nil
	}

	var stateModels []*model.PresenceStateModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&stateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find presence by users")
	}

	states := make([]*entity.PresenceState, 0, len(stateModels))
	for _, stateM := range stateModels {
		states = append(states, toPresenceDomain(stateM))
	}

	return states, nil
}

// --- Mapper Functions ---

// toPresenceDomain converts a GORM PresenceStateModel to a domain PresenceState entity.
func toPresenceDomain(data *model.PresenceStateModel) *entity.PresenceState {
	if data == nil {
		return nil
	}

	return &entity.PresenceState{
		UserID:     data.UserID,
		IsOnline:   data.IsOnline,
		LastSeenAt: data.LastSeenAt,
	}
}

// fromPresenceDomain converts a domain PresenceState entity to a GORM PresenceStateModel.
func fromPresenceDomain(data *entity.PresenceState) *model.PresenceStateModel {
	if data == nil {
		return nil
	}

	return &model.PresenceStateModel{
		UserID:     data.UserID,
		IsOnline:   data.IsOnline,
		LastSeenAt: data.LastSeenAt,
	}
}
