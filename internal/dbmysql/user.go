package dbmysql

import (
	"time"
)

type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceOffline PresenceStatus = "offline"
	PresenceAway    PresenceStatus = "away"
)

// User rows are created by the identity service; the messaging core only reads them.
type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	DisplayName  string         `gorm:"size:100" json:"display_name"`
	Email        string         `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Presence     PresenceStatus `gorm:"size:16;default:offline" json:"presence"`
	LastSeenAt   time.Time      `json:"last_seen_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
