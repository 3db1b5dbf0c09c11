package postgres

import (
	"context"
	"time"

	"nearnow/internal/domain/entity"
	"nearnow/internal/domain/repository"
	"nearnow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// UpsertLocation writes the user's current location, replacing any prior row.
// The WHERE on the conflict update enforces per-user capture-time monotonicity
// at the database level, so concurrent reports cannot roll a row backwards.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)
	locationM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"latitude":    locationM.Latitude,
				"longitude":   locationM.Longitude,
				"accuracy_m":  locationM.AccuracyM,
				"captured_at": locationM.CapturedAt,
				"updated_at":  locationM.UpdatedAt,
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Lte{Column: clause.Column{Table: "user_locations", Name: "captured_at"}, Value: locationM.CapturedAt},
			}},
		}).
		Create(locationM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to upsert location")
	}

	// Zero rows means the conflict update was suppressed by the monotonicity
	// guard, i.e. the stored capture time is newer than the report's.
	if result.RowsAffected == 0 {
		return repository.ErrStaleLocation
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByUser retrieves the current location for a user.
func (repo *locationRepository) FindLocationByUser(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user")
	}

	return toLocationDomain(&locationM), nil
}

// FindCandidateLocations retrieves every stored location except the requester's.
func (repo *locationRepository) FindCandidateLocations(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.UserLocation, error) {
	var locationModels []*model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id <> ?", excludeUserID).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidate locations")
	}

	locations := make([]*entity.UserLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		AccuracyM:  data.AccuracyM,
		CapturedAt: data.CapturedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		AccuracyM:  data.AccuracyM,
		CapturedAt: data.CapturedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
