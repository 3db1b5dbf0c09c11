// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"
	"time"

	"nearnow/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportLocationInput represents one client location report.
type ReportLocationInput struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	AccuracyM  float64   `json:"accuracy_m"`
	CapturedAt time.Time `json:"captured_at"`
}

// LocationUsecase defines the interface for location ingestion use cases.
type LocationUsecase interface {
	// Report ingests a location report. The boolean result is false when the
	// report is stale (captured before the stored location) and was discarded;
	// staleness is an expected outcome, not an error. An accepted report also
	// marks the user online.
	Report(ctx context.Context, userID uuid.UUID, input *ReportLocationInput) (bool, error)

	// MarkOffline records that the user left, removing them from discovery's
	// online signal.
	MarkOffline(ctx context.Context, userID uuid.UUID) error

	// GetLocation returns the user's stored last-known location.
	GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)
}
