package user

import (
	"context"

	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	UserByID(ctx context.Context, userID string) (*dbmysql.User, error)
	UserByEmail(ctx context.Context, email string) (*dbmysql.User, error)
	UpdatePresence(ctx context.Context, userID string, status dbmysql.PresenceStatus) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePresence(ctx context.Context, userID string, status dbmysql.PresenceStatus) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"presence":     status,
			"last_seen_at": gorm.Expr("NOW()"),
		}).Error
}
