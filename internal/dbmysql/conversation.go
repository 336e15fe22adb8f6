package dbmysql

import (
	"time"
)

// Conversation is a durable thread. LastActivityAt only moves forward: every
// message insert bumps it to the message's creation time.
type Conversation struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `gorm:"index" json:"last_activity_at"`
}
