// Package handler contains the Pub/Sub push handlers for the notification
// worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"nearnow/config"
	deliverycontext "nearnow/internal/delivery/context"
	"nearnow/internal/domain/constants"
	"nearnow/internal/domain/entity"
	"nearnow/internal/domain/repository"
	"nearnow/internal/domain/service"
	"nearnow/internal/infra/notification"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/idtoken"
)

// Event type attribute values set by the publisher.
const (
	eventTypeChatPush  = "chat_push"
	eventTypeMatchPush = "match_push"
)

// sendConcurrency bounds parallel FCM sends per event.
const sendConcurrency = 8

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying chat and match push
// events and fans them out to the recipients' devices.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	eventType := pushMsg.Message.Attributes["event_type"]
	reqLogger.Info("[Worker] Processing push event",
		slog.String("event_type", eventType),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	err = h.dispatch(ctx, reqLogger, eventType, data)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process push event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Push event processed successfully",
		slog.String("event_type", eventType),
	)

	return c.NoContent(http.StatusOK)
}

// dispatch routes the decoded payload by event type.
func (h *PushHandler) dispatch(ctx context.Context, logger *slog.Logger, eventType string, data []byte) error {
	switch eventType {
	case eventTypeChatPush:
		var event service.ChatPushEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(err, "failed to parse chat push event")
		}

		return h.processChatPush(ctx, logger, &event)

	case eventTypeMatchPush:
		var event service.MatchPushEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(err, "failed to parse match push event")
		}

		return h.processMatchPush(ctx, logger, &event)

	default:
		return errors.Errorf("unknown event type: %s", eventType)
	}
}

// extractRequestID extracts request_id from message attributes, context, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 3. Generate new UUID as fallback
	return uuid.New().String()
}

// processChatPush notifies the recipient's devices about a new message.
func (h *PushHandler) processChatPush(ctx context.Context, logger *slog.Logger, event *service.ChatPushEvent) error {
	title := "New message"
	body := event.Preview
	data := map[string]string{
		"type":       eventTypeChatPush,
		"match_id":   event.MatchID.String(),
		"message_id": event.MessageID.String(),
		"sender_id":  event.SenderID.String(),
		"kind":       event.Kind,
		"sent_at":    event.SentAt.UTC().Format(time.RFC3339),
	}

	return h.fanOut(ctx, logger, []uuid.UUID{event.RecipientID}, title, body, data)
}

// processMatchPush notifies both participants that a mutual match formed.
func (h *PushHandler) processMatchPush(ctx context.Context, logger *slog.Logger, event *service.MatchPushEvent) error {
	title := "It's a match!"
	body := "You and someone nearby liked each other"
	data := map[string]string{
		"type":       eventTypeMatchPush,
		"match_id":   event.MatchID.String(),
		"matched_at": event.MatchedAt.UTC().Format(time.RFC3339),
	}

	return h.fanOut(ctx, logger, []uuid.UUID{event.UserA, event.UserB}, title, body, data)
}

// fanOut sends one notification per active device of the given users and
// retires devices whose tokens came back invalid.
func (h *PushHandler) fanOut(ctx context.Context, logger *slog.Logger, userIDs []uuid.UUID, title, body string, data map[string]string) error {
	devices, err := h.deviceRepo.FindDevicesForUsers(ctx, userIDs)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		logger.Info("[Worker] No devices registered for recipients",
			slog.Int("recipient_count", len(userIDs)),
		)

		return nil
	}

	var mu sync.Mutex
	var invalidDevices []*entity.UserDevice
	var sent, failed int

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(sendConcurrency)

	for _, device := range devices {
		group.Go(func() error {
			sendErr := h.notificationSvc.Send(groupCtx, &service.PushNotification{
				Token: device.FCMToken,
				Title: title,
				Body:  body,
				Data:  data,
			})

			mu.Lock()
			defer mu.Unlock()
			if sendErr != nil {
				failed++
				if notification.IsInvalidToken(sendErr) {
					invalidDevices = append(invalidDevices, device)
				} else {
					logger.Warn("[Worker] Failed to send notification",
						slog.String("device_id", device.ID.String()),
						slog.Any("error", sendErr),
					)
				}

				return nil
			}
			sent++

			return nil
		})
	}

	// Send errors are tallied, never propagated, so Wait only reflects
	// context cancellation.
	if err := group.Wait(); err != nil {
		return newRetryableError(err)
	}

	h.cleanupInvalidDevices(ctx, logger, invalidDevices)

	logger.Info("[Worker] Notification fan-out completed",
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidDevices)),
	)

	return nil
}

// cleanupInvalidDevices removes devices with invalid FCM tokens
func (h *PushHandler) cleanupInvalidDevices(ctx context.Context, logger *slog.Logger, devices []*entity.UserDevice) {
	for _, device := range devices {
		if err := h.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			logger.Warn("[Worker] Failed to delete invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
