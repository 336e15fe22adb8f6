package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// Message belongs to a conversation; the sender must have been a participant
// when it was created. Soft-deleted messages drop out of normal queries but the
// row is kept so reply references stay resolvable.
type Message struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	ConversationID string         `gorm:"index;size:36" json:"conversation_id"`
	SenderID       string         `gorm:"index;size:36" json:"sender_id"`
	Content        string         `gorm:"type:text" json:"content"`
	Edited         bool           `json:"edited"`
	ReplyToID      *string        `gorm:"size:36" json:"reply_to_id,omitempty"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
