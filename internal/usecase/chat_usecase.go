package usecase

import (
	"context"
	"io"
	"time"

	"nearnow/internal/domain/entity"
	"nearnow/internal/domain/service"

	"github.com/google/uuid"
)

// SendMessageInput represents one outgoing text message.
type SendMessageInput struct {
	Content string `json:"content"`
}

// HistoryInput represents a backward-pagination request over a match's
// messages. Zero Limit falls back to the configured page size. BeforeID is
// the boundary message's ID; carrying it alongside Before keeps pages
// gapless when two messages share a timestamp.
type HistoryInput struct {
	Limit    int        `json:"limit"`
	Before   *time.Time `json:"before,omitempty"`
	BeforeID *uuid.UUID `json:"before_id,omitempty"`
}

// ChatSubscriptionHandlers carries the callbacks a subscriber receives
// events through. Nil handlers are simply skipped.
type ChatSubscriptionHandlers struct {
	OnMessage     func(event *service.MessageEvent)
	OnReadReceipt func(event *service.ReadReceiptEvent)
	OnTyping      func(event *service.TypingEvent)
	OnMatchClosed func()
}

// ChatSubscription is a live per-match subscription handle.
type ChatSubscription interface {
	// Close tears the subscription down and stops any typing signal the
	// subscriber left active. Closing twice is safe.
	Close() error
}

// ChatUsecase defines the interface for realtime messaging use cases.
type ChatUsecase interface {
	// Send appends a text message to an active match the sender participates
	// in, then announces it on the realtime feed. Feed delivery is best
	// effort; History recovers anything missed.
	Send(ctx context.Context, matchID, senderID uuid.UUID, input *SendMessageInput) (*entity.Message, error)

	// SendImage stores the image in the blob bucket and appends an image
	// message whose content is the stored URL.
	SendImage(ctx context.Context, matchID, senderID uuid.UUID, contentType string, body io.Reader) (*entity.Message, error)

	// SendLocation appends a location message carrying "lat,lon" in decimal
	// degrees.
	SendLocation(ctx context.Context, matchID, senderID uuid.UUID, latitude, longitude float64) (*entity.Message, error)

	// History returns up to Limit messages sent before the cursor, oldest
	// first within the page.
	History(ctx context.Context, matchID, userID uuid.UUID, input *HistoryInput) ([]*entity.Message, error)

	// MarkRead stamps a read receipt on every unread message addressed to the
	// reader and returns the affected message IDs. Idempotent; receipts never
	// regress.
	MarkRead(ctx context.Context, matchID, readerID uuid.UUID) ([]uuid.UUID, error)

	// Subscribe opens the client's live feed for one match. A client holds at
	// most one feed per match; resubscribing tears down the prior one.
	Subscribe(ctx context.Context, matchID, clientID uuid.UUID, handlers *ChatSubscriptionHandlers) (ChatSubscription, error)

	// SendTyping announces a transient typing signal. A started signal
	// auto-stops after the configured timeout unless renewed; stop signals
	// are sent eagerly.
	SendTyping(ctx context.Context, matchID, userID uuid.UUID, isTyping bool) error
}
