package repository

import (
	"context"
	"time"

	"nearnow/internal/domain/entity"
	"nearnow/internal/errors"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageCursor is a keyset pagination boundary over the (sent_at, id)
// ordering. With a zero ID the cursor degrades to sent_at alone; callers
// paginating from a boundary message should always carry its ID, since two
// messages may share a timestamp.
type MessageCursor struct {
	SentAt time.Time
	ID     uuid.UUID
}

// MessageRepository defines the interface for message-related database operations.
type MessageRepository interface {
	// CreateMessage appends a new message to its match's sequence.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessagesByMatch retrieves up to limit messages for a match in
	// descending (sent_at, id) order. A non-nil before restricts results to
	// messages strictly earlier in that ordering, enabling backward
	// pagination without gaps on timestamp ties.
	FindMessagesByMatch(ctx context.Context, matchID uuid.UUID, limit int, before *MessageCursor) ([]*entity.Message, error)

	// MarkMessagesRead sets read_at on every unread message in the match not
	// sent by readerID, and returns the IDs of the rows it updated. Rows with
	// read_at already set are never touched, so the receipt is monotonic and
	// the call idempotent.
	MarkMessagesRead(ctx context.Context, matchID, readerID uuid.UUID, readAt time.Time) ([]uuid.UUID, error)

	// CountUnread counts messages in the match not sent by readerID with no
	// read receipt yet.
	CountUnread(ctx context.Context, matchID, readerID uuid.UUID) (int64, error)
}
