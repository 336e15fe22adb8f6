package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService is the identity collaborator: the messaging core only reads the
// User rows this service creates.
type UserService interface {
	Register(ctx context.Context, displayName, email, password string) (*dbmysql.User, error)
	Login(ctx context.Context, email, password string) (string, *dbmysql.User, error)
	Profile(ctx context.Context, userID string) (*dbmysql.User, error)
	SetPresence(ctx context.Context, userID string, status dbmysql.PresenceStatus) error
}

type userService struct {
	repo   UserRepository
	issuer *common.TokenIssuer
}

func NewUserService(repo UserRepository, issuer *common.TokenIssuer) UserService {
	return &userService{repo: repo, issuer: issuer}
}

func (s *userService) Register(ctx context.Context, displayName, email, password string) (*dbmysql.User, error) {
	if displayName == "" || email == "" {
		return nil, fmt.Errorf("display name and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := common.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &dbmysql.User{
		ID:           uuid.NewString(),
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: hash,
		Presence:     dbmysql.PresenceOffline,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *dbmysql.User, error) {
	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Generate(user.ID, user.DisplayName)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *userService) Profile(ctx context.Context, userID string) (*dbmysql.User, error) {
	user, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) SetPresence(ctx context.Context, userID string, status dbmysql.PresenceStatus) error {
	switch status {
	case dbmysql.PresenceOnline, dbmysql.PresenceOffline, dbmysql.PresenceAway:
	default:
		return fmt.Errorf("invalid presence status %q", status)
	}
	return s.repo.UpdatePresence(ctx, userID, status)
}
