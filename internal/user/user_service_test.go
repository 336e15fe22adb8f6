package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
	"chatcore/internal/user/mocks"
)

func newTestService(t *testing.T) (UserService, *mocks.MockUserRepository, *common.TokenIssuer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	issuer := common.NewTokenIssuer("test-secret", time.Hour)
	return NewUserService(repo, issuer), repo, issuer
}

func TestRegister(t *testing.T) {
	svc, repo, _ := newTestService(t)

	var created *dbmysql.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *dbmysql.User) error {
			created = u
			return nil
		})

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter2hunter2")

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, dbmysql.PresenceOffline, user.Presence)
	require.NotNil(t, created)
	assert.NotEqual(t, "hunter2hunter2", created.PasswordHash, "password must be stored hashed")
	assert.NoError(t, common.CheckPassword("hunter2hunter2", created.PasswordHash))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		email       string
		password    string
	}{
		{name: "missing display name", email: "a@b.c", password: "longenough"},
		{name: "missing email", displayName: "Alice", password: "longenough"},
		{name: "short password", displayName: "Alice", email: "a@b.c", password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)

			_, err := svc.Register(context.Background(), tt.displayName, tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, repo, issuer := newTestService(t)

	hash, err := common.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	repo.EXPECT().
		UserByEmail(gomock.Any(), "alice@example.com").
		Return(&dbmysql.User{ID: "user-1", DisplayName: "Alice", Email: "alice@example.com", PasswordHash: hash}, nil)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "hunter2hunter2")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Alice", claims.DisplayName)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)

	hash, err := common.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	repo.EXPECT().
		UserByEmail(gomock.Any(), "alice@example.com").
		Return(&dbmysql.User{ID: "user-1", PasswordHash: hash}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, repo, _ := newTestService(t)

	// Unknown account and wrong password are indistinguishable to the caller.
	repo.EXPECT().
		UserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t)

	repo.EXPECT().
		UserByID(gomock.Any(), "ghost").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Profile(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetPresence(t *testing.T) {
	svc, repo, _ := newTestService(t)

	repo.EXPECT().
		UpdatePresence(gomock.Any(), "user-1", dbmysql.PresenceAway).
		Return(nil)

	require.NoError(t, svc.SetPresence(context.Background(), "user-1", dbmysql.PresenceAway))
}

func TestSetPresence_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.SetPresence(context.Background(), "user-1", dbmysql.PresenceStatus("sleeping"))

	assert.Error(t, err)
}
