package readstate

import (
	"context"
	"time"

	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

// Tracker owns the per-(conversation, user) read watermark.
type Tracker interface {
	MarkRead(ctx context.Context, conversationID, userID string) error
}

type gormTracker struct {
	db *gorm.DB
}

func NewTracker(db *gorm.DB) Tracker {
	return &gormTracker{db: db}
}

// MarkRead advances the caller's last_read_at to now. Last-write-wins is safe
// here: only the owning user's sessions write this pair. A missing row is a
// benign race with concurrent removal and is treated as success, not an error.
func (t *gormTracker) MarkRead(ctx context.Context, conversationID, userID string) error {
	return t.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Update("last_read_at", time.Now().UTC()).Error
}

// IsUnread derives the unread flag. It is recomputed on every read and never
// stored, so it cannot go stale.
func IsUnread(conv *dbmysql.Conversation, p *dbmysql.Participant) bool {
	if conv == nil || p == nil {
		return false
	}
	return conv.LastActivityAt.After(p.LastReadAt)
}
