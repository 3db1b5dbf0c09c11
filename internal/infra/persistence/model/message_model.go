package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// Append-only; read_at is the only column mutated after insert.
type MessageModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MatchID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_messages_match_sent"`
	SenderID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Content  string     `gorm:"type:text;not null"`
	Kind     string     `gorm:"type:varchar(20);not null;default:'text'"`
	SentAt   time.Time  `gorm:"not null;index:idx_messages_match_sent"`
	ReadAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
