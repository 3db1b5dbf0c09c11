package handler

import (
	"log/slog"
	"net/http"

	"nearnow/internal/delivery/http/response"
	"nearnow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler holds dependencies for the proximity query handler
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// FindNearbyRequest represents the query parameters of a proximity query
type FindNearbyRequest struct {
	Latitude  float64 `query:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `query:"longitude" validate:"min=-180,max=180"`
	RadiusKm  float64 `query:"radius_km" validate:"min=0"`
	Limit     int     `query:"limit" validate:"min=0"`
}

// FindNearby handles the nearby-users query
func (h *DiscoveryHandler) FindNearby(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req FindNearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.FindNearbyInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
		Limit:     req.Limit,
	}

	nearby, err := h.discoveryUC.FindNearby(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby users retrieved successfully")
}
