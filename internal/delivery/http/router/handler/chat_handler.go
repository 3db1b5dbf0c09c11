package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"nearnow/internal/delivery/http/response"
	"nearnow/internal/domain/service"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler holds dependencies for realtime messaging handlers
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// SendMessageRequest represents the request body for sending a text message
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// SendLocationRequest represents the request body for sharing a location
type SendLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// TypingRequest represents the request body for a typing signal
type TypingRequest struct {
	IsTyping bool `json:"is_typing"`
}

// SendMessage handles appending a text message to a match
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, matchID, err := h.getUserAndMatch(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.chatUC.Send(c.Request().Context(), matchID, userID, &usecase.SendMessageInput{
		Content: req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// SendImage handles uploading an image message. The image arrives as the
// "image" field of a multipart form.
func (h *ChatHandler) SendImage(c echo.Context) error {
	userID, matchID, err := h.getUserAndMatch(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'image' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read uploaded image")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	message, err := h.chatUC.SendImage(c.Request().Context(), matchID, userID, contentType, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Image sent successfully")
}

// SendLocation handles sharing a point location in the chat
func (h *ChatHandler) SendLocation(c echo.Context) error {
	userID, matchID, err := h.getUserAndMatch(c)
	if err != nil {
		return err
	}

	var req SendLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.chatUC.SendLocation(c.Request().Context(), matchID, userID, req.Latitude, req.Longitude)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Location shared successfully")
}

// History handles backward pagination over a match's messages
func (h *ChatHandler) History(c echo.Context) error {
	userID, matchID, err := h.getUserAndMatch(c)
	if err != nil {
		return err
	}

	input := &usecase.HistoryInput{}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		var limit int
		if _, err := fmt.Sscanf(limitParam, "%d", &limit); err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit parameter")
		}
		input.Limit = limit
	}
	if beforeParam := c.QueryParam("before"); beforeParam != "" {
		before, err := time.Parse(time.RFC3339, beforeParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_CURSOR", "Cursor must be an RFC3339 timestamp")
		}
		input.Before = &before
	}
	if beforeIDParam := c.QueryParam("before_id"); beforeIDParam != "" {
		if input.Before == nil {
			return response.BadRequest(c, "INVALID_CURSOR", "before_id requires a before timestamp")
		}
		beforeID, err := uuid.Parse(beforeIDParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_CURSOR", "before_id must be a UUID")
		}
		input.BeforeID = &beforeID
	}

	messages, err := h.chatUC.History(c.Request().Context(), matchID, userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages, "History retrieved successfully")
}

// MarkRead handles stamping read receipts on unread messages
func (h *ChatHandler) MarkRead(c echo.Context) error {
	userID, matchID, err := h.getUserAndMatch(c)
	if err != nil {
		return err
	}

	messageIDs, err := h.chatUC.MarkRead(c.Request().Context(), matchID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"message_ids": messageIDs}, "Messages marked read")
}

// SendTyping handles transient typing signals
func (h *ChatHandler) SendTyping(c echo.Context) error {
	userID, matchID, err := h.getUserAndMatch(c)
	if err != nil {
		return err
	}

	var req TypingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid typing input")
	}

	if err := h.chatUC.SendTyping(c.Request().Context(), matchID, userID, req.IsTyping); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// streamEvent is the wire form of one server-sent event on the chat stream.
type streamEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Stream opens the match's live feed as a server-sent event stream. The
// stream ends when the client disconnects or the match closes.
func (h *ChatHandler) Stream(c echo.Context) error {
	userID, matchID, err := h.getUserAndMatch(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	// Buffered so a slow client cannot stall the feed dispatcher; events
	// beyond the buffer are dropped and recovered through History.
	events := make(chan *streamEvent, 64)
	offer := func(event *streamEvent) {
		select {
		case events <- event:
		default:
		}
	}

	// The feed can deliver match_closed more than once (each participant's
	// unmatch publishes independently); only the first may close the channel.
	closed := make(chan struct{})
	var closeOnce sync.Once
	handlers := &usecase.ChatSubscriptionHandlers{
		OnMessage: func(event *service.MessageEvent) {
			offer(&streamEvent{Type: "message", Payload: event})
		},
		OnReadReceipt: func(event *service.ReadReceiptEvent) {
			offer(&streamEvent{Type: "read_receipt", Payload: event})
		},
		OnTyping: func(event *service.TypingEvent) {
			offer(&streamEvent{Type: "typing", Payload: event})
		},
		OnMatchClosed: func() {
			offer(&streamEvent{Type: "match_closed"})
			closeOnce.Do(func() { close(closed) })
		},
	}

	subscription, err := h.chatUC.Subscribe(ctx, matchID, userID, handlers)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer subscription.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			h.drainAndWrite(c, events)

			return nil
		case event := <-events:
			if err := h.writeEvent(c, event); err != nil {
				return nil
			}
		}
	}
}

// drainAndWrite flushes any events still buffered when the stream ends.
func (h *ChatHandler) drainAndWrite(c echo.Context, events chan *streamEvent) {
	for {
		select {
		case event := <-events:
			if err := h.writeEvent(c, event); err != nil {
				return
			}
		default:
			return
		}
	}
}

// writeEvent serializes one event in SSE framing and flushes it.
func (h *ChatHandler) writeEvent(c echo.Context, event *streamEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", data); err != nil {
		return err
	}
	c.Response().Flush()

	return nil
}

// getUserAndMatch extracts the authenticated user and the match path param
func (h *ChatHandler) getUserAndMatch(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := getUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	return userID, matchID, nil
}
