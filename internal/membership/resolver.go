package membership

import (
	"context"

	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

// Resolver answers membership questions. It is the authorization primitive the
// rest of the system leans on: the write surface gates every conversation and
// message operation on IsParticipant, and the change notifier uses
// ParticipantsOf as its fan-out addressing source.
type Resolver interface {
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
	ParticipantsOf(ctx context.Context, conversationID string) ([]string, error)
}

// gormResolver is a trusted accessor: it queries the participants table with
// the root DB handle and must never sit behind an access-control layer that
// itself calls back into membership checks. A nonexistent conversation is not
// an error, it is simply "no members".
type gormResolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) Resolver {
	return &gormResolver{db: db}
}

func (r *gormResolver) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormResolver) ParticipantsOf(ctx context.Context, conversationID string) ([]string, error) {
	var userIDs []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ?", conversationID).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}
