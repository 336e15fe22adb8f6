package membership

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func TestResolver_IsParticipant(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected bool
	}{
		{name: "member", count: 1, expected: true},
		{name: "not a member", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock, cleanup := setupTestDB(t)
			defer cleanup()

			resolver := NewResolver(gormDB)

			mock.ExpectQuery("SELECT count\\(\\*\\) FROM `participants`").
				WithArgs("conv-1", "alice").
				WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(tt.count))

			ok, err := resolver.IsParticipant(context.Background(), "conv-1", "alice")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// A conversation that does not exist simply has no members: false, not an error.
func TestResolver_IsParticipant_MissingConversation(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	resolver := NewResolver(gormDB)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `participants`").
		WithArgs("conv-missing", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	ok, err := resolver.IsParticipant(context.Background(), "conv-missing", "alice")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolver_ParticipantsOf(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	resolver := NewResolver(gormDB)

	mock.ExpectQuery("SELECT `user_id` FROM `participants`").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow("alice").
			AddRow("bob"))

	users, err := resolver.ParticipantsOf(context.Background(), "conv-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)
}

func TestResolver_ParticipantsOf_MissingConversation(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	resolver := NewResolver(gormDB)

	mock.ExpectQuery("SELECT `user_id` FROM `participants`").
		WithArgs("conv-missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	users, err := resolver.ParticipantsOf(context.Background(), "conv-missing")

	require.NoError(t, err)
	assert.Empty(t, users)
}
