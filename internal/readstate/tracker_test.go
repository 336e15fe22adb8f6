package readstate

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chatcore/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestTracker_MarkRead(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	tracker := NewTracker(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `participants` SET `last_read_at`").
		WithArgs(sqlmock.AnyArg(), "conv-1", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tracker.MarkRead(context.Background(), "conv-1", "alice")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTracker_MarkRead_MissingRowIsNoOp(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	tracker := NewTracker(gormDB)

	// Zero rows affected: the caller raced with its own removal. Success.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `participants` SET `last_read_at`").
		WithArgs(sqlmock.AnyArg(), "conv-gone", "alice").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := tracker.MarkRead(context.Background(), "conv-gone", "alice")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUnread(t *testing.T) {
	joined := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		conv     *dbmysql.Conversation
		row      *dbmysql.Participant
		expected bool
	}{
		{
			name:     "activity after last read",
			conv:     &dbmysql.Conversation{LastActivityAt: joined.Add(time.Minute)},
			row:      &dbmysql.Participant{LastReadAt: joined},
			expected: true,
		},
		{
			name:     "read up to date",
			conv:     &dbmysql.Conversation{LastActivityAt: joined},
			row:      &dbmysql.Participant{LastReadAt: joined},
			expected: false,
		},
		{
			name:     "read after activity",
			conv:     &dbmysql.Conversation{LastActivityAt: joined},
			row:      &dbmysql.Participant{LastReadAt: joined.Add(time.Minute)},
			expected: false,
		},
		{
			name:     "nil conversation",
			conv:     nil,
			row:      &dbmysql.Participant{LastReadAt: joined},
			expected: false,
		},
		{
			name:     "nil participant",
			conv:     &dbmysql.Conversation{LastActivityAt: joined},
			row:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUnread(tt.conv, tt.row))
		})
	}
}

// The unread law: marking read clears the flag until new activity arrives.
func TestUnreadLaw(t *testing.T) {
	conv := &dbmysql.Conversation{LastActivityAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}
	row := &dbmysql.Participant{LastReadAt: conv.LastActivityAt.Add(-time.Hour)}

	assert.True(t, IsUnread(conv, row))

	// markRead sets last_read_at to now, after the current activity watermark.
	row.LastReadAt = time.Now().UTC()
	assert.False(t, IsUnread(conv, row))

	// A new message bumps the conversation's watermark past the read mark.
	conv.LastActivityAt = row.LastReadAt.Add(time.Second)
	assert.True(t, IsUnread(conv, row))
}
