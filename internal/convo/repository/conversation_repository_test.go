package repository

import (
	"context"
	"errors"
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

func TestConversationRepository_CreateConversation(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `participants`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	conv, rows, err := repo.CreateConversation(context.Background(), []string{"alice", "bob"})

	require.NoError(t, err)
	assert.NotEmpty(t, conv.ID)
	assert.Equal(t, conv.CreatedAt, conv.LastActivityAt)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, conv.ID, row.ConversationID)
		assert.Equal(t, row.JoinedAt, row.LastReadAt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_CreateConversation_Atomic(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	// Participant insert fails: the conversation row must roll back with it.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `participants`").
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	conv, rows, err := repo.CreateConversation(context.Background(), []string{"alice", "bob"})

	assert.Error(t, err)
	assert.Nil(t, conv)
	assert.Nil(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_SaveMessage(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	now := time.Now().UTC()
	msg := &dbmysql.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		SenderID:       "bob",
		Content:        "hi",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `messages`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `conversations` SET `last_activity_at`").
		WithArgs(msg.CreatedAt, "conv-1", msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT `user_id` FROM `participants`").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow("alice").
			AddRow("bob"))
	mock.ExpectCommit()

	recipients, err := repo.SaveMessage(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, recipients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_SaveMessage_WatermarkNeverRegresses(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	msg := &dbmysql.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		SenderID:       "bob",
		Content:        "hi",
		CreatedAt:      time.Now().UTC(),
	}

	// A racing send already advanced last_activity_at past this message: the
	// guarded update touches zero rows, the conversation still exists, and the
	// send succeeds without moving the watermark backwards.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `messages`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `conversations` SET `last_activity_at`").
		WithArgs(msg.CreatedAt, "conv-1", msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `conversations`").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT `user_id` FROM `participants`").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow("alice").
			AddRow("bob"))
	mock.ExpectCommit()

	recipients, err := repo.SaveMessage(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, recipients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_SaveMessage_MissingConversation(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	msg := &dbmysql.Message{
		ID:             "msg-1",
		ConversationID: "conv-gone",
		SenderID:       "bob",
		Content:        "hi",
		CreatedAt:      time.Now().UTC(),
	}

	// The activity bump touches zero rows and the existence probe confirms the
	// conversation is gone: the message insert must roll back with it.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `messages`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `conversations` SET `last_activity_at`").
		WithArgs(msg.CreatedAt, "conv-gone", msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `conversations`").
		WithArgs("conv-gone").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectRollback()

	recipients, err := repo.SaveMessage(context.Background(), msg)

	assert.ErrorIs(t, err, ErrConversationNotFound)
	assert.Nil(t, recipients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_SoftDeleteMessage(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	msg := &dbmysql.Message{ID: "msg-1", ConversationID: "conv-1", SenderID: "bob"}

	// Soft delete is an UPDATE on deleted_at, not a DELETE: the row stays for
	// reply references.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `messages` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT `user_id` FROM `participants`").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow("alice").
			AddRow("bob"))
	mock.ExpectCommit()

	recipients, err := repo.SoftDeleteMessage(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, recipients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_RemoveParticipant_MissingRow(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `participants`").
		WithArgs("conv-1", "ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"conversation_id", "user_id"}))
	mock.ExpectRollback()

	row, err := repo.RemoveParticipant(context.Background(), "conv-1", "ghost")

	require.NoError(t, err)
	assert.Nil(t, row)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_MessagesOf_ExcludesSoftDeleted(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	// GORM's soft-delete scope adds the deleted_at IS NULL predicate.
	mock.ExpectQuery("SELECT \\* FROM `messages` WHERE conversation_id = \\? AND `messages`.`deleted_at` IS NULL").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content"}).
			AddRow("msg-1", "conv-1", "bob", "hi"))

	messages, err := repo.MessagesOf(context.Background(), "conv-1", 0, 0)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-1", messages[0].ID)
}

func TestConversationRepository_MessagesOf_OffsetWithoutLimit(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	// MySQL rejects OFFSET without LIMIT, so an offset-only page gets the
	// default page size instead of a broken query.
	mock.ExpectQuery("SELECT \\* FROM `messages` WHERE conversation_id = \\? AND `messages`.`deleted_at` IS NULL ORDER BY created_at ASC LIMIT \\? OFFSET \\?").
		WithArgs("conv-1", defaultMessagePageSize, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content"}).
			AddRow("msg-11", "conv-1", "bob", "hi"))

	messages, err := repo.MessagesOf(context.Background(), "conv-1", 0, 10)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-11", messages[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_LatestMessages(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	mock.ExpectQuery("ROW_NUMBER\\(\\) OVER \\(PARTITION BY conversation_id ORDER BY created_at DESC\\)").
		WithArgs("conv-1", "conv-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content"}).
			AddRow("msg-9", "conv-1", "bob", "latest"))

	latest, err := repo.LatestMessages(context.Background(), []string{"conv-1", "conv-2"})

	require.NoError(t, err)
	require.Contains(t, latest, "conv-1")
	assert.Equal(t, "latest", latest["conv-1"].Content)
	assert.NotContains(t, latest, "conv-2")
}

func TestConversationRepository_LatestMessages_NoIDsNoQuery(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewConversationRepository(gormDB)

	latest, err := repo.LatestMessages(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, latest)
	assert.NoError(t, mock.ExpectationsWereMet())
}
