package postgres

import (
	"testing"
	"time"

	"nearnow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCursorPredicate_CompositeCursor(t *testing.T) {
	sentAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	boundaryID := uuid.New()

	cond, args := messageCursorPredicate(&repository.MessageCursor{SentAt: sentAt, ID: boundaryID})

	// Equal-timestamp rows must still be comparable, so the id tiebreak from
	// the ordering has to appear in the boundary too.
	assert.Equal(t, "sent_at < ? OR (sent_at = ? AND id < ?)", cond)
	require.Len(t, args, 3)
	assert.Equal(t, sentAt, args[0])
	assert.Equal(t, sentAt, args[1])
	assert.Equal(t, boundaryID, args[2])
}

func TestMessageCursorPredicate_TimeOnlyCursor(t *testing.T) {
	sentAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cond, args := messageCursorPredicate(&repository.MessageCursor{SentAt: sentAt})

	assert.Equal(t, "sent_at < ?", cond)
	require.Len(t, args, 1)
	assert.Equal(t, sentAt, args[0])
}
