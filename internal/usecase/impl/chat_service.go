package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"nearnow/config"
	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/domain/service"
	"nearnow/internal/geo"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxMessageLength caps text message content in runes.
const maxMessageLength = 4000

type chatService struct {
	matchRepo      repository.MatchRepository
	messageRepo    repository.MessageRepository
	feed           service.RealtimeFeed
	imageStore     service.ImageStore
	eventPublisher service.EventPublisher
	logger         *slog.Logger

	historyPageSize int
	typingTimeout   time.Duration

	// subscriptions holds the one live feed each client may have per match.
	subscriptionsMu sync.Mutex
	subscriptions   map[subscriptionKey]*chatSubscription

	// typingTimers drives sender-side auto-stop for typing signals.
	typingTimersMu sync.Mutex
	typingTimers   map[typingKey]*time.Timer
}

type subscriptionKey struct {
	clientID uuid.UUID
	matchID  uuid.UUID
}

type typingKey struct {
	userID  uuid.UUID
	matchID uuid.UUID
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	MatchRepo      repository.MatchRepository
	MessageRepo    repository.MessageRepository
	Feed           service.RealtimeFeed
	ImageStore     service.ImageStore
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewChatService creates a new messaging channel instance
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		matchRepo:       params.MatchRepo,
		messageRepo:     params.MessageRepo,
		feed:            params.Feed,
		imageStore:      params.ImageStore,
		eventPublisher:  params.EventPublisher,
		logger:          params.Logger,
		historyPageSize: params.Config.Chat.HistoryPageSize,
		typingTimeout:   time.Duration(params.Config.Chat.TypingTimeoutSec) * time.Second,
		subscriptions:   make(map[subscriptionKey]*chatSubscription),
		typingTimers:    make(map[typingKey]*time.Timer),
	}
}

// authorize loads the match and verifies the user participates in it.
// requireActive additionally rejects closed matches; history and read
// receipts remain available after an unmatch, sending does not.
func (s *chatService) authorize(ctx context.Context, matchID, userID uuid.UUID, requireActive bool) (*entity.Match, error) {
	match, err := s.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, domainerrors.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by ID")
	}

	if !match.Involves(userID) {
		return nil, domainerrors.ErrNotMatchParticipant
	}

	if requireActive && !match.IsActive {
		return nil, domainerrors.ErrMatchNotActive
	}

	return match, nil
}

// Send appends a text message and announces it on the realtime feed.
func (s *chatService) Send(ctx context.Context, matchID, senderID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrEmptyMessage
	}
	if len([]rune(content)) > maxMessageLength {
		return nil, domainerrors.ErrMessageTooLong
	}

	return s.appendMessage(ctx, matchID, senderID, content, entity.MessageKindText)
}

// SendImage stores the image and appends an image message carrying its URL.
func (s *chatService) SendImage(ctx context.Context, matchID, senderID uuid.UUID, contentType string, body io.Reader) (*entity.Message, error) {
	match, err := s.authorize(ctx, matchID, senderID, true)
	if err != nil {
		return nil, err
	}

	key := "chat/" + match.ID.String() + "/" + uuid.New().String()
	url, err := s.imageStore.Save(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store chat image")
	}

	message, err := s.appendMessage(ctx, matchID, senderID, url, entity.MessageKindImage)
	if err != nil {
		// The message row is the source of truth; an orphaned blob is
		// garbage, not corruption.
		if delErr := s.imageStore.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to delete orphaned chat image",
				slog.String("key", key),
				slog.String("error", delErr.Error()),
			)
		}

		return nil, err
	}

	return message, nil
}

// SendLocation appends a location message carrying "lat,lon".
func (s *chatService) SendLocation(ctx context.Context, matchID, senderID uuid.UUID, latitude, longitude float64) (*entity.Message, error) {
	if !geo.ValidCoordinate(latitude, longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	content := strconv.FormatFloat(latitude, 'f', -1, 64) + "," + strconv.FormatFloat(longitude, 'f', -1, 64)

	return s.appendMessage(ctx, matchID, senderID, content, entity.MessageKindLocation)
}

func (s *chatService) appendMessage(ctx context.Context, matchID, senderID uuid.UUID, content string, kind entity.MessageKind) (*entity.Message, error) {
	match, err := s.authorize(ctx, matchID, senderID, true)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:       uuid.New(),
		MatchID:  matchID,
		SenderID: senderID,
		Content:  content,
		Kind:     kind,
	}

	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	// Persist first, then announce. A lost announcement is recovered by
	// History on the next fetch.
	if err := s.feed.Publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventMessage,
		MatchID: matchID,
		Message: &service.MessageEvent{
			MessageID: message.ID,
			SenderID:  senderID,
			Content:   message.Content,
			Kind:      string(message.Kind),
			SentAt:    message.SentAt,
		},
	}); err != nil {
		s.logger.Warn("failed to publish message event",
			slog.String("match_id", matchID.String()),
			slog.String("message_id", message.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.publishChatPush(ctx, match, message)

	return message, nil
}

// publishChatPush hands the message to the push pipeline for the offline
// recipient. Best effort.
func (s *chatService) publishChatPush(ctx context.Context, match *entity.Match, message *entity.Message) {
	preview := message.Content
	switch message.Kind {
	case entity.MessageKindImage:
		preview = "sent a photo"
	case entity.MessageKindLocation:
		preview = "shared a location"
	case entity.MessageKindText:
		if len([]rune(preview)) > 120 {
			preview = string([]rune(preview)[:120])
		}
	}

	if err := s.eventPublisher.PublishChatPush(ctx, &service.ChatPushEvent{
		MessageID:   message.ID,
		MatchID:     match.ID,
		SenderID:    message.SenderID,
		RecipientID: match.OtherParticipant(message.SenderID),
		Kind:        string(message.Kind),
		Preview:     preview,
		SentAt:      message.SentAt,
	}); err != nil {
		s.logger.Warn("failed to publish chat push event",
			slog.String("message_id", message.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// History returns up to Limit messages sent before the cursor, oldest first.
func (s *chatService) History(ctx context.Context, matchID, userID uuid.UUID, input *usecase.HistoryInput) ([]*entity.Message, error) {
	if _, err := s.authorize(ctx, matchID, userID, false); err != nil {
		return nil, err
	}

	limit := s.historyPageSize
	if input != nil && input.Limit > 0 && input.Limit < limit {
		limit = input.Limit
	}

	var before *repository.MessageCursor
	if input != nil && input.Before != nil {
		before = &repository.MessageCursor{SentAt: *input.Before}
		if input.BeforeID != nil {
			before.ID = *input.BeforeID
		}
	}

	messages, err := s.messageRepo.FindMessagesByMatch(ctx, matchID, limit, before)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find messages by match")
	}

	// The repository returns newest first for the cursor; readers want
	// chronological order within the page.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// MarkRead stamps a read receipt on every unread message addressed to the reader.
func (s *chatService) MarkRead(ctx context.Context, matchID, readerID uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.authorize(ctx, matchID, readerID, false); err != nil {
		return nil, err
	}

	readAt := time.Now().UTC()

	messageIDs, err := s.messageRepo.MarkMessagesRead(ctx, matchID, readerID, readAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark messages read")
	}

	if len(messageIDs) > 0 {
		if err := s.feed.Publish(ctx, &service.FeedEvent{
			Type:    service.FeedEventReadReceipt,
			MatchID: matchID,
			Read: &service.ReadReceiptEvent{
				ReaderID:   readerID,
				MessageIDs: messageIDs,
				ReadAt:     readAt,
			},
		}); err != nil {
			s.logger.Warn("failed to publish read receipt event",
				slog.String("match_id", matchID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return messageIDs, nil
}

// Subscribe opens the client's live feed for one match, replacing any prior
// feed the same client holds for it.
func (s *chatService) Subscribe(ctx context.Context, matchID, clientID uuid.UUID, handlers *usecase.ChatSubscriptionHandlers) (usecase.ChatSubscription, error) {
	if _, err := s.authorize(ctx, matchID, clientID, false); err != nil {
		return nil, err
	}

	feedSub, err := s.feed.Subscribe(ctx, matchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to match feed")
	}

	key := subscriptionKey{clientID: clientID, matchID: matchID}
	sub := &chatSubscription{
		service: s,
		key:     key,
		feedSub: feedSub,
	}

	s.subscriptionsMu.Lock()
	prior := s.subscriptions[key]
	s.subscriptions[key] = sub
	s.subscriptionsMu.Unlock()

	if prior != nil {
		// One feed per match per client; the newer subscription wins.
		_ = prior.Close()
	}

	go sub.dispatch(handlers)

	return sub, nil
}

// SendTyping announces a transient typing signal with sender-side auto-stop.
func (s *chatService) SendTyping(ctx context.Context, matchID, userID uuid.UUID, isTyping bool) error {
	if _, err := s.authorize(ctx, matchID, userID, true); err != nil {
		return err
	}

	if err := s.publishTyping(ctx, matchID, userID, isTyping); err != nil {
		return err
	}

	key := typingKey{userID: userID, matchID: matchID}

	s.typingTimersMu.Lock()
	defer s.typingTimersMu.Unlock()

	if timer, ok := s.typingTimers[key]; ok {
		timer.Stop()
		delete(s.typingTimers, key)
	}

	if isTyping {
		s.typingTimers[key] = time.AfterFunc(s.typingTimeout, func() {
			s.typingTimersMu.Lock()
			delete(s.typingTimers, key)
			s.typingTimersMu.Unlock()

			// The auto-stop outlives the originating request's context.
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := s.publishTyping(stopCtx, matchID, userID, false); err != nil {
				s.logger.Warn("failed to auto-stop typing signal",
					slog.String("match_id", matchID.String()),
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
			}
		})
	}

	return nil
}

func (s *chatService) publishTyping(ctx context.Context, matchID, userID uuid.UUID, isTyping bool) error {
	if err := s.feed.Publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventTyping,
		MatchID: matchID,
		Typing: &service.TypingEvent{
			UserID:   userID,
			IsTyping: isTyping,
		},
	}); err != nil {
		return errors.Wrap(err, "failed to publish typing event")
	}

	return nil
}

// stopTypingFor cancels any pending auto-stop and eagerly publishes a stop
// signal when a subscription closes mid-typing.
func (s *chatService) stopTypingFor(key subscriptionKey) {
	tKey := typingKey{userID: key.clientID, matchID: key.matchID}

	s.typingTimersMu.Lock()
	timer, ok := s.typingTimers[tKey]
	if ok {
		timer.Stop()
		delete(s.typingTimers, tKey)
	}
	s.typingTimersMu.Unlock()

	if !ok {
		return
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.publishTyping(stopCtx, key.matchID, key.clientID, false); err != nil {
		s.logger.Warn("failed to stop typing signal on unsubscribe",
			slog.String("match_id", key.matchID.String()),
			slog.String("user_id", key.clientID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// chatSubscription adapts a raw feed subscription to handler callbacks and
// keeps the per-client registry consistent.
type chatSubscription struct {
	service *chatService
	key     subscriptionKey
	feedSub service.FeedSubscription

	closeOnce sync.Once
}

// Close tears the subscription down. Closing twice is safe.
func (sub *chatSubscription) Close() error {
	var err error
	sub.closeOnce.Do(func() {
		s := sub.service

		s.subscriptionsMu.Lock()
		if s.subscriptions[sub.key] == sub {
			delete(s.subscriptions, sub.key)
		}
		s.subscriptionsMu.Unlock()

		s.stopTypingFor(sub.key)

		err = sub.feedSub.Close()
	})

	return err
}

// dispatch fans feed events out to the subscriber's handlers until the feed closes.
func (sub *chatSubscription) dispatch(handlers *usecase.ChatSubscriptionHandlers) {
	if handlers == nil {
		handlers = &usecase.ChatSubscriptionHandlers{}
	}

	for event := range sub.feedSub.Events() {
		switch event.Type {
		case service.FeedEventMessage:
			if handlers.OnMessage != nil && event.Message != nil {
				handlers.OnMessage(event.Message)
			}
		case service.FeedEventReadReceipt:
			if handlers.OnReadReceipt != nil && event.Read != nil {
				handlers.OnReadReceipt(event.Read)
			}
		case service.FeedEventTyping:
			if handlers.OnTyping != nil && event.Typing != nil {
				handlers.OnTyping(event.Typing)
			}
		case service.FeedEventMatchClosed:
			if handlers.OnMatchClosed != nil {
				handlers.OnMatchClosed()
			}
		case service.FeedEventMatchCreated:
			// Match creation is announced on the feed for completeness but
			// clients learn about it through the push pipeline.
		}
	}
}
