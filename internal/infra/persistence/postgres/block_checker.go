package postgres

import (
	"context"

	"nearnow/internal/domain/service"
	"nearnow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blockChecker implements the service.BlockChecker interface by reading the
// blocks table maintained by the account system.
type blockChecker struct {
	db *gorm.DB
}

// NewBlockChecker is the constructor for blockChecker.
func NewBlockChecker(db *gorm.DB) service.BlockChecker {
	return &blockChecker{
		db: db,
	}
}

// IsBlocked reports whether either user has blocked the other.
func (c *blockChecker) IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var count int64

	if err := c.db.WithContext(ctx).
		Model(&model.BlockModel{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check block state")
	}

	return count > 0, nil
}

// BlockedUserIDs returns every user blocked by or blocking userID.
func (c *blockChecker) BlockedUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var blockModels []*model.BlockModel

	if err := c.db.WithContext(ctx).
		Where("blocker_id = ? OR blocked_id = ?", userID, userID).
		Find(&blockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blocked users")
	}

	seen := make(map[uuid.UUID]struct{}, len(blockModels))
	ids := make([]uuid.UUID, 0, len(blockModels))
	for _, blockM := range blockModels {
		other := blockM.BlockerID
		if other == userID {
			other = blockM.BlockedID
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}

	return ids, nil
}
