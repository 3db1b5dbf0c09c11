package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"nearnow/internal/delivery/http/response"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PresenceHandlerParams holds dependencies for PresenceHandler, injected by Fx.
type PresenceHandlerParams struct {
	fx.In

	PresenceUC usecase.PresenceUsecase
	Logger     *slog.Logger
}

// PresenceHandler holds dependencies for presence-related handlers
type PresenceHandler struct {
	presenceUC usecase.PresenceUsecase
	logger     *slog.Logger
}

// NewPresenceHandler is the constructor for PresenceHandler
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	return &PresenceHandler{
		presenceUC: params.PresenceUC,
		logger:     params.Logger,
	}
}

// Heartbeat handles the periodic online assertion
func (h *PresenceHandler) Heartbeat(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.presenceUC.Heartbeat(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "online"}, "Heartbeat recorded")
}

// SetOffline handles the explicit offline transition
func (h *PresenceHandler) SetOffline(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.presenceUC.SetOffline(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "offline"}, "Marked offline")
}

// GetPresence handles the batch presence lookup. User IDs arrive as a
// comma-separated "ids" query parameter.
func (h *PresenceHandler) GetPresence(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	idsParam := c.QueryParam("ids")
	if idsParam == "" {
		return response.BadRequest(c, "MISSING_IDS", "Query parameter 'ids' is required")
	}

	parts := strings.Split(idsParam, ",")
	userIDs := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID: "+part)
		}
		userIDs = append(userIDs, id)
	}

	states, err := h.presenceUC.GetPresence(c.Request().Context(), userIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, states, "Presence retrieved successfully")
}
