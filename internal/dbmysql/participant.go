package dbmysql

import (
	"time"
)

// Participant joins a user to a conversation. It is both the privacy boundary
// and the notification address: events about a conversation go to exactly the
// users with a row here. LastReadAt defaults to the join time; only the owning
// user's sessions ever write it, so last-write-wins is race-free.
type Participant struct {
	ConversationID string    `gorm:"primaryKey;size:36" json:"conversation_id"`
	UserID         string    `gorm:"primaryKey;size:36;index" json:"user_id"`
	LastReadAt     time.Time `json:"last_read_at"`
	JoinedAt       time.Time `json:"joined_at"`

	Conversation *Conversation `gorm:"foreignKey:ConversationID;references:ID" json:"-"`
}
