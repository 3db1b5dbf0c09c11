package postgres

import (
	"context"
	"time"

	"nearnow/internal/domain/entity"
	domainerrors "nearnow/internal/domain/errors"
	"nearnow/internal/domain/repository"
	"nearnow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// CreateMessage appends a new message to its match's sequence.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)
	if messageM.SentAt.IsZero() {
		messageM.SentAt = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMatchNotFound.WrapMessage("message references an unknown match")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.SentAt = messageM.SentAt

	return nil
}

// messageCursorPredicate builds the keyset boundary condition matching the
// (sent_at, id) ordering. The id tiebreak keeps a page split between two
// equal-timestamp messages from dropping the second one.
func messageCursorPredicate(before *repository.MessageCursor) (string, []any) {
	if before.ID != uuid.Nil {
		return "sent_at < ? OR (sent_at = ? AND id < ?)", []any{before.SentAt, before.SentAt, before.ID}
	}

	return "sent_at < ?", []any{before.SentAt}
}

// FindMessagesByMatch retrieves up to limit messages for a match in descending
// (sent_at, id) order. The cursor compares on the same composite key, so a
// page boundary between two equal-timestamp messages drops nothing.
func (repo *messageRepository) FindMessagesByMatch(ctx context.Context, matchID uuid.UUID, limit int, before *repository.MessageCursor) ([]*entity.Message, error) {
	query := repo.db.WithContext(ctx).
		Where("match_id = ?", matchID)

	if before != nil {
		cond, args := messageCursorPredicate(before)
		query = query.Where(cond, args...)
	}

	var messageModels []*model.MessageModel

	if err := query.
		Order("sent_at DESC, id DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by match")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkMessagesRead sets read_at on every unread message in the match not sent
// by readerID, and returns the IDs of the rows it updated. The read_at IS NULL
// guard makes the receipt monotonic and the call idempotent.
func (repo *messageRepository) MarkMessagesRead(ctx context.Context, matchID, readerID uuid.UUID, readAt time.Time) ([]uuid.UUID, error) {
	var updatedIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Raw(`
			UPDATE messages
			SET read_at = ?
			WHERE match_id = ?
			  AND sender_id <> ?
			  AND read_at IS NULL
			RETURNING id
		`, readAt, matchID, readerID).
		Scan(&updatedIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to mark messages read")
	}

	return updatedIDs, nil
}

// CountUnread counts messages in the match not sent by readerID with no read receipt yet.
func (repo *messageRepository) CountUnread(ctx context.Context, matchID, readerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("match_id = ? AND sender_id <> ? AND read_at IS NULL", matchID, readerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:       data.ID,
		MatchID:  data.MatchID,
		SenderID: data.SenderID,
		Content:  data.Content,
		Kind:     entity.MessageKind(data.Kind),
		SentAt:   data.SentAt,
		ReadAt:   data.ReadAt,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:       data.ID,
		MatchID:  data.MatchID,
		SenderID: data.SenderID,
		Content:  data.Content,
		Kind:     string(data.Kind),
		SentAt:   data.SentAt,
		ReadAt:   data.ReadAt,
	}
}
