package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository is the durable side of the conversation store. Every
// mutating method runs in a single transaction and captures the fan-out
// recipient set inside that transaction, so late-computed sets can never
// include users removed in the meantime.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, participantIDs []string) (*dbmysql.Conversation, []*dbmysql.Participant, error)
	DeleteConversation(ctx context.Context, conversationID string) ([]*dbmysql.Participant, *dbmysql.Conversation, error)
	RemoveParticipant(ctx context.Context, conversationID, userID string) (*dbmysql.Participant, error)
	ConversationByID(ctx context.Context, conversationID string) (*dbmysql.Conversation, error)
	ParticipantRowsOf(ctx context.Context, userID string) ([]*dbmysql.Participant, error)

	SaveMessage(ctx context.Context, msg *dbmysql.Message) ([]string, error)
	UpdateMessage(ctx context.Context, msg *dbmysql.Message) ([]string, error)
	SoftDeleteMessage(ctx context.Context, msg *dbmysql.Message) ([]string, error)
	MessageByID(ctx context.Context, messageID string) (*dbmysql.Message, error)
	MessagesOf(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.Message, error)
	LatestMessages(ctx context.Context, conversationIDs []string) (map[string]*dbmysql.Message, error)
	ReplySnapshot(ctx context.Context, messageID string) (*dbmysql.Message, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepo{db: db}
}

// CreateConversation inserts the conversation and all participant rows
// atomically: every participant or none. last_read_at starts at the join time.
func (r *conversationRepo) CreateConversation(ctx context.Context, participantIDs []string) (*dbmysql.Conversation, []*dbmysql.Participant, error) {
	now := time.Now().UTC()
	conv := &dbmysql.Conversation{
		ID:             uuid.NewString(),
		CreatedAt:      now,
		LastActivityAt: now,
	}

	rows := make([]*dbmysql.Participant, 0, len(participantIDs))
	for _, userID := range participantIDs {
		rows = append(rows, &dbmysql.Participant{
			ConversationID: conv.ID,
			UserID:         userID,
			LastReadAt:     now,
			JoinedAt:       now,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}
		return tx.Create(rows).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return conv, rows, nil
}

// DeleteConversation removes participant rows individually, then the messages,
// then the conversation itself. The removed participant snapshots come back in
// deletion order so each removal can fan out its own event before the
// conversation-level delete.
func (r *conversationRepo) DeleteConversation(ctx context.Context, conversationID string) ([]*dbmysql.Participant, *dbmysql.Conversation, error) {
	var (
		conv    dbmysql.Conversation
		removed []*dbmysql.Participant
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", conversationID).First(&conv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConversationNotFound
			}
			return err
		}

		if err := tx.Where("conversation_id = ?", conversationID).Find(&removed).Error; err != nil {
			return err
		}

		for _, p := range removed {
			err := tx.Where("conversation_id = ? AND user_id = ?", p.ConversationID, p.UserID).
				Delete(&dbmysql.Participant{}).Error
			if err != nil {
				return err
			}
		}

		// Hard delete: the conversation is gone, reply integrity no longer matters.
		if err := tx.Unscoped().Where("conversation_id = ?", conversationID).Delete(&dbmysql.Message{}).Error; err != nil {
			return err
		}

		return tx.Delete(&conv).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return removed, &conv, nil
}

// RemoveParticipant deletes one membership row. A missing row is a benign race
// with a concurrent removal and returns (nil, nil).
func (r *conversationRepo) RemoveParticipant(ctx context.Context, conversationID, userID string) (*dbmysql.Participant, error) {
	var row dbmysql.Participant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("conversation_id = ? AND user_id = ?", conversationID, userID).First(&row).Error
		if err != nil {
			return err
		}
		return tx.Where("conversation_id = ? AND user_id = ?", conversationID, userID).
			Delete(&dbmysql.Participant{}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *conversationRepo) ConversationByID(ctx context.Context, conversationID string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", conversationID).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

// ParticipantRowsOf returns the user's membership rows with conversations
// preloaded, most recently active first. This feeds the conversation list and
// its derived unread flags.
func (r *conversationRepo) ParticipantRowsOf(ctx context.Context, userID string) ([]*dbmysql.Participant, error) {
	var rows []*dbmysql.Participant
	err := r.db.WithContext(ctx).
		Joins("Conversation").
		Where("participants.user_id = ?", userID).
		Order("Conversation.last_activity_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveMessage inserts the message, advances the conversation's activity
// watermark to the message's creation time and snapshots the current
// participant ids, all in one transaction.
func (r *conversationRepo) SaveMessage(ctx context.Context, msg *dbmysql.Message) ([]string, error) {
	var recipients []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		// The watermark only moves forward. Zero rows means either the
		// conversation is gone or a racing send already advanced it past this
		// message; only the former is an error.
		res := tx.Model(&dbmysql.Conversation{}).
			Where("id = ? AND last_activity_at < ?", msg.ConversationID, msg.CreatedAt).
			Update("last_activity_at", msg.CreatedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			err := tx.Model(&dbmysql.Conversation{}).
				Where("id = ?", msg.ConversationID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count == 0 {
				return ErrConversationNotFound
			}
		}

		return tx.Model(&dbmysql.Participant{}).
			Where("conversation_id = ?", msg.ConversationID).
			Pluck("user_id", &recipients).Error
	})
	if err != nil {
		return nil, err
	}
	return recipients, nil
}

func (r *conversationRepo) UpdateMessage(ctx context.Context, msg *dbmysql.Message) ([]string, error) {
	var recipients []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(msg).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.Participant{}).
			Where("conversation_id = ?", msg.ConversationID).
			Pluck("user_id", &recipients).Error
	})
	if err != nil {
		return nil, err
	}
	return recipients, nil
}

func (r *conversationRepo) SoftDeleteMessage(ctx context.Context, msg *dbmysql.Message) ([]string, error) {
	var recipients []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", msg.ID).Delete(&dbmysql.Message{}).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.Participant{}).
			Where("conversation_id = ?", msg.ConversationID).
			Pluck("user_id", &recipients).Error
	})
	if err != nil {
		return nil, err
	}
	return recipients, nil
}

func (r *conversationRepo) MessageByID(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// defaultMessagePageSize caps an offset-only page: MySQL has no OFFSET
// without LIMIT.
const defaultMessagePageSize = 100

func (r *conversationRepo) MessagesOf(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.Message, error) {
	if offset > 0 && limit <= 0 {
		limit = defaultMessagePageSize
	}

	var messages []*dbmysql.Message
	q := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	return messages, q.Find(&messages).Error
}

// LatestMessages resolves every conversation's newest visible message in a
// single windowed query, keyed by conversation id. Conversations without
// messages are absent from the map.
func (r *conversationRepo) LatestMessages(ctx context.Context, conversationIDs []string) (map[string]*dbmysql.Message, error) {
	out := make(map[string]*dbmysql.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return out, nil
	}

	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM (
			SELECT *, ROW_NUMBER() OVER (PARTITION BY conversation_id ORDER BY created_at DESC) AS rn
			FROM messages
			WHERE conversation_id IN ? AND deleted_at IS NULL
		) ranked WHERE rn = 1`, conversationIDs).
		Scan(&messages).Error
	if err != nil {
		return nil, err
	}

	for _, msg := range messages {
		out[msg.ConversationID] = msg
	}
	return out, nil
}

// ReplySnapshot resolves a reply reference including soft-deleted targets, so
// the service can render a "deleted message" placeholder instead of a broken
// link.
func (r *conversationRepo) ReplySnapshot(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Unscoped().Where("id = ?", messageID).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
