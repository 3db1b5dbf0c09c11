package model

import (
	"time"

	"github.com/google/uuid"
)

// PresenceStateModel is the GORM-specific struct for the 'presence_states'
// table. One row per user, written by the presence tracker only.
type PresenceStateModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	IsOnline   bool      `gorm:"not null;default:false"`
	LastSeenAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PresenceStateModel) TableName() string {
	return "presence_states"
}
