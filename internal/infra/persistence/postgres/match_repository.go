package postgres

import (
	"context"
	"time"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// CreateMatch persists a new match. The caller supplies a canonically ordered
// pair; the unique pair index turns a concurrent double-create into
// ErrDuplicateMatch instead of a second row.
func (repo *matchRepository) CreateMatch(ctx context.Context, match *entity.Match) error {
	matchM := fromMatchDomain(match)
	now := time.Now().UTC()
	if matchM.MatchedAt.IsZero() {
		matchM.MatchedAt = now
	}
	matchM.UpdatedAt = now

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMatch
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid match participant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	// Update the entity with generated values
	match.ID = matchM.ID
	match.MatchedAt = matchM.MatchedAt
	match.UpdatedAt = matchM.UpdatedAt

	return nil
}

// FindMatchByID retrieves a match by its unique ID.
func (repo *matchRepository) FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	var matchM model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by ID")
	}

	return toMatchDomain(&matchM), nil
}

// FindMatchByPair retrieves the match for an unordered pair, active or not.
func (repo *matchRepository) FindMatchByPair(ctx context.Context, userA, userB uuid.UUID) (*entity.Match, error) {
	a, b := entity.CanonicalPair(userA, userB)

	var matchM model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ?", a, b).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by pair")
	}

	return toMatchDomain(&matchM), nil
}

// FindActiveMatchesByUser retrieves all active matches involving a user, most recent first.
func (repo *matchRepository) FindActiveMatchesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("(user_a = ? OR user_b = ?) AND is_active = ?", userID, userID, true).
		Order("matched_at DESC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active matches by user")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// UpdateMatchStatus flips the active flag (unmatch / reactivate). The
// is_active guard makes the transition happen at most once; a zero row count
// means another caller already performed it (or the match does not exist).
func (repo *matchRepository) UpdateMatchStatus(ctx context.Context, id uuid.UUID, isActive bool) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ? AND is_active = ?", id, !isActive).
		Updates(map[string]any{
			"is_active":  isActive,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update match status")
	}

	return result.RowsAffected > 0, nil
}

// CountActiveMatchesByUser counts active matches involving a user.
func (repo *matchRepository) CountActiveMatchesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("(user_a = ? OR user_b = ?) AND is_active = ?", userID, userID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active matches by user")
	}

	return count, nil
}

// --- Mapper Functions ---

// toMatchDomain converts a GORM MatchModel to a domain Match entity.
func toMatchDomain(data *model.MatchModel) *entity.Match {
	if data == nil {
		return nil
	}

	return &entity.Match{
		ID:        data.ID,
		UserA:     data.UserA,
		UserB:     data.UserB,
		IsActive:  data.IsActive,
		MatchedAt: data.MatchedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMatchDomain converts a domain Match entity to a GORM MatchModel.
func fromMatchDomain(data *entity.Match) *model.MatchModel {
	if data == nil {
		return nil
	}

	return &model.MatchModel{
		ID:        data.ID,
		UserA:     data.UserA,
		UserB:     data.UserB,
		IsActive:  data.IsActive,
		MatchedAt: data.MatchedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
