package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchModel is the GORM-specific struct for the 'matches' table.
// The (user_a, user_b) unique index assumes canonical pair ordering and
// guarantees at most one row per unordered pair.
type MatchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserA     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair;index"`
	UserB     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	MatchedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
