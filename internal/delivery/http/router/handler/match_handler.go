package handler

import (
	"log/slog"
	"net/http"

	"nearnow/internal/delivery/http/response"
	"nearnow/internal/domain/entity"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// MatchHandler holds dependencies for swipe and match handlers
type MatchHandler struct {
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// SwipeRequest represents the request body for recording a swipe
type SwipeRequest struct {
	SwipedID uuid.UUID `json:"swiped_id" validate:"required"`
	Kind     string    `json:"kind" validate:"required,oneof=like pass super_like"`
}

// Swipe handles recording a swipe and reports any resulting match
func (h *MatchHandler) Swipe(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SwipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid swipe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.matchingUC.Swipe(c.Request().Context(), userID, req.SwipedID, entity.SwipeKind(req.Kind))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Swipe recorded successfully")
}

// Unmatch handles closing an active match
func (h *MatchHandler) Unmatch(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	if err := h.matchingUC.Unmatch(c.Request().Context(), matchID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Match closed"}, "Match closed successfully")
}

// ListMatches handles retrieving the caller's active matches
func (h *MatchHandler) ListMatches(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	matches, err := h.matchingUC.ListMatches(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches, "Matches retrieved successfully")
}

// HasLiked reports whether the caller currently expresses interest in a user
func (h *MatchHandler) HasLiked(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	swipedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	liked, err := h.matchingUC.HasLiked(c.Request().Context(), userID, swipedID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Like status retrieved successfully")
}

// GetSwipeStats returns counts of interest the caller has received
func (h *MatchHandler) GetSwipeStats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.matchingUC.GetSwipeStats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Swipe stats retrieved successfully")
}
