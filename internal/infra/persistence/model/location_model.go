// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// It holds each user's last-known position, one current row per user.
type UserLocationModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	AccuracyM  float64   `gorm:"type:double precision;not null;default:0"`
	CapturedAt time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
