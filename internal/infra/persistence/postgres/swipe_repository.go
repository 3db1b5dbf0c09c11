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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// swipeRepository implements the repository.SwipeRepository interface.
type swipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository is the constructor for swipeRepository.
func NewSwipeRepository(db *gorm.DB) repository.SwipeRepository {
	return &swipeRepository{
		db: db,
	}
}

// UpsertSwipe creates or replaces the swipe for the ordered pair. The latest
// intent always wins, so a pass can overwrite a like and vice versa.
func (repo *swipeRepository) UpsertSwipe(ctx context.Context, swipe *entity.Swipe) error {
	swipeM := fromSwipeDomain(swipe)
	swipeM.UpdatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "updated_at"}),
		}).
		Create(swipeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required swipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert swipe")
	}

	swipe.UpdatedAt = swipeM.UpdatedAt

	return nil
}

// FindSwipe retrieves the current swipe for the ordered pair. Reads from the
// primary: the reciprocity check must not miss a like that a lagging replica
// has not replayed yet.
func (repo *swipeRepository) FindSwipe(ctx context.Context, swiperID, swipedID uuid.UUID) (*entity.Swipe, error) {
	var swipeM model.SwipeModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		First(&swipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSwipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find swipe")
	}

	return toSwipeDomain(&swipeM), nil
}

// CountSwipesReceived counts swipes of the given kind directed at a user.
func (repo *swipeRepository) CountSwipesReceived(ctx context.Context, swipedID uuid.UUID, kind entity.SwipeKind) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SwipeModel{}).
		Where("swiped_id = ? AND kind = ?", swipedID, string(kind)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count swipes received")
	}

	return count, nil
}

// --- Mapper Functions ---

// toSwipeDomain converts a GORM SwipeModel to a domain Swipe entity.
func toSwipeDomain(data *model.SwipeModel) *entity.Swipe {
	if data == nil {
		return nil
	}

	return &entity.Swipe{
		SwiperID:  data.SwiperID,
		SwipedID:  data.SwipedID,
		Kind:      entity.SwipeKind(data.Kind),
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSwipeDomain converts a domain Swipe entity to a GORM SwipeModel.
func fromSwipeDomain(data *entity.Swipe) *model.SwipeModel {
	if data == nil {
		return nil
	}

	return &model.SwipeModel{
		SwiperID:  data.SwiperID,
		SwipedID:  data.SwipedID,
		Kind:      string(data.Kind),
		UpdatedAt: data.UpdatedAt,
	}
}
