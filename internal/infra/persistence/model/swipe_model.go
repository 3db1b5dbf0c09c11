package model

import (
	"time"

	"github.com/google/uuid"
)

// SwipeModel is the GORM-specific struct for the 'swipes' table.
// One row per ordered pair; re-swiping replaces the row in place.
type SwipeModel struct {
	SwiperID  uuid.UUID `gorm:"type:uuid;primary_key"`
	SwipedID  uuid.UUID `gorm:"type:uuid;primary_key;index"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SwipeModel) TableName() string {
	return "swipes"
}
