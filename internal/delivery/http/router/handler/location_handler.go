// Package handler contains the echo handlers for the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nearnow/internal/delivery/http/response"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest represents the request body for a location report
type ReportLocationRequest struct {
	Latitude   float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64    `json:"longitude" validate:"min=-180,max=180"`
	AccuracyM  float64    `json:"accuracy_m" validate:"min=0"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// ReportLocation handles ingesting a client location report
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ReportLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		AccuracyM: req.AccuracyM,
	}
	if req.CapturedAt != nil {
		input.CapturedAt = *req.CapturedAt
	}

	accepted, err := h.locationUC.Report(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"accepted": accepted}, "Location report processed")
}

// GetLocation handles retrieving the caller's stored last-known location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// MarkOffline handles removing the caller from the discovery online signal
func (h *LocationHandler) MarkOffline(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.locationUC.MarkOffline(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Marked offline"}, "Marked offline successfully")
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
