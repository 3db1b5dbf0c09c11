package model

import (
	"time"

	"github.com/google/uuid"
)

// BlockModel is the GORM-specific struct for the 'blocks' table. Rows are
// written by the account system; this service only reads them.
type BlockModel struct {
	BlockerID uuid.UUID `gorm:"type:uuid;primary_key"`
	BlockedID uuid.UUID `gorm:"type:uuid;primary_key;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlockModel) TableName() string {
	return "blocks"
}
