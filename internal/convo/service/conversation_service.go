package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chatcore/internal/convo/repository"
	"chatcore/internal/dbmysql"
	"chatcore/internal/membership"
	"chatcore/internal/notify"
	"chatcore/internal/readstate"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrNotParticipant = errors.New("caller is not a participant")
	ErrNotSender      = errors.New("caller is not the sender")
	ErrNotFound       = errors.New("not found")
)

// ConversationView is one row of a user's conversation list. Unread is derived
// on every read, never stored.
type ConversationView struct {
	ID             string       `json:"id"`
	CreatedAt      time.Time    `json:"created_at"`
	LastActivityAt time.Time    `json:"last_activity_at"`
	LastReadAt     time.Time    `json:"last_read_at"`
	Unread         bool         `json:"unread"`
	LastMessage    *MessageView `json:"last_message,omitempty"`
}

type MessageView struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
	Content        string     `json:"content"`
	Edited         bool       `json:"edited"`
	CreatedAt      time.Time  `json:"created_at"`
	ReplyTo        *ReplyView `json:"reply_to,omitempty"`
}

// ReplyView is the weak link to a replied-to message. If the target was
// soft-deleted after the reply was written, it resolves to a placeholder.
type ReplyView struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Deleted bool   `json:"deleted"`
}

// ConversationService defines the interface exposed to the handler layer
type ConversationService interface {
	CreateConversation(ctx context.Context, callerID string, participantIDs []string) (*dbmysql.Conversation, error)
	DeleteConversation(ctx context.Context, callerID, conversationID string) error
	LeaveConversation(ctx context.Context, callerID, conversationID string) error
	ListConversations(ctx context.Context, callerID string) ([]*ConversationView, error)
	MarkRead(ctx context.Context, callerID, conversationID string) error

	SendMessage(ctx context.Context, callerID, conversationID, content string, replyToID *string) (*dbmysql.Message, error)
	EditMessage(ctx context.Context, callerID, messageID, content string) (*dbmysql.Message, error)
	DeleteMessage(ctx context.Context, callerID, messageID string) error
	ListMessages(ctx context.Context, callerID, conversationID string, limit, offset int) ([]*MessageView, error)
}

type conversationService struct {
	repo     repository.ConversationRepository
	members  membership.Resolver
	notifier notify.Notifier
	tracker  readstate.Tracker
}

// Constructor used in DI/wire
func NewConversationService(
	repo repository.ConversationRepository,
	members membership.Resolver,
	notifier notify.Notifier,
	tracker readstate.Tracker,
) ConversationService {
	return &conversationService{
		repo:     repo,
		members:  members,
		notifier: notifier,
		tracker:  tracker,
	}
}

// CreateConversation creates the conversation and its initial participant set
// atomically, then fans out one "you were added" event per participant. The
// conversation row itself has no subscribers at insert time, so no
// conversation-level event is emitted.
func (s *conversationService) CreateConversation(ctx context.Context, callerID string, participantIDs []string) (*dbmysql.Conversation, error) {
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("%w: participant list cannot be empty", ErrValidation)
	}

	unique := make([]string, 0, len(participantIDs))
	seen := make(map[string]bool, len(participantIDs))
	for _, id := range participantIDs {
		if id == "" {
			return nil, fmt.Errorf("%w: participant id cannot be empty", ErrValidation)
		}
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	if len(unique) < 2 {
		return nil, fmt.Errorf("%w: at least 2 participants required", ErrValidation)
	}
	if !seen[callerID] {
		return nil, fmt.Errorf("%w: participant list must include the caller", ErrValidation)
	}

	conv, rows, err := s.repo.CreateConversation(ctx, unique)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		s.notifier.EmitParticipant(ctx, notify.OpInsert, row, nil)
	}

	return conv, nil
}

// DeleteConversation removes participant rows individually, each fanning out a
// removal event to its own user, before the conversation row disappears. By
// the time the conversation delete commits its participant set is empty, so
// the conversation-level event addresses no one; clients react to their own
// participant-removal event.
func (s *conversationService) DeleteConversation(ctx context.Context, callerID, conversationID string) error {
	ok, err := s.members.IsParticipant(ctx, conversationID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotParticipant
	}

	removed, conv, err := s.repo.DeleteConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return ErrNotFound
		}
		return err
	}

	for _, row := range removed {
		s.notifier.EmitParticipant(ctx, notify.OpDelete, nil, row)
	}
	s.notifier.EmitConversation(ctx, notify.OpDelete, nil, nil, conv)

	return nil
}

// LeaveConversation removes the caller's own membership row. A row already
// gone is a benign race and succeeds silently.
func (s *conversationService) LeaveConversation(ctx context.Context, callerID, conversationID string) error {
	row, err := s.repo.RemoveParticipant(ctx, conversationID, callerID)
	if err != nil {
		return err
	}
	if row != nil {
		s.notifier.EmitParticipant(ctx, notify.OpDelete, nil, row)
	}
	return nil
}

func (s *conversationService) ListConversations(ctx context.Context, callerID string) ([]*ConversationView, error) {
	rows, err := s.repo.ParticipantRowsOf(ctx, callerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Conversation != nil {
			ids = append(ids, row.ConversationID)
		}
	}

	// One query for all previews, not one per conversation.
	latest, err := s.repo.LatestMessages(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*ConversationView, 0, len(rows))
	for _, row := range rows {
		if row.Conversation == nil {
			continue
		}
		view := &ConversationView{
			ID:             row.ConversationID,
			CreatedAt:      row.Conversation.CreatedAt,
			LastActivityAt: row.Conversation.LastActivityAt,
			LastReadAt:     row.LastReadAt,
			Unread:         readstate.IsUnread(row.Conversation, row),
		}

		if msg := latest[row.ConversationID]; msg != nil {
			view.LastMessage = &MessageView{
				ID:             msg.ID,
				ConversationID: msg.ConversationID,
				SenderID:       msg.SenderID,
				Content:        msg.Content,
				Edited:         msg.Edited,
				CreatedAt:      msg.CreatedAt,
			}
		}

		views = append(views, view)
	}

	return views, nil
}

// MarkRead is not membership-gated: a caller racing with its own removal gets
// a silent no-op, which is the documented policy.
func (s *conversationService) MarkRead(ctx context.Context, callerID, conversationID string) error {
	return s.tracker.MarkRead(ctx, conversationID, callerID)
}

// SendMessage persists the message and fans out one event per participant,
// sender included. Sending does NOT advance the sender's own last_read_at; the
// sender's client marks read explicitly.
func (s *conversationService) SendMessage(ctx context.Context, callerID, conversationID, content string, replyToID *string) (*dbmysql.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	}

	ok, err := s.members.IsParticipant(ctx, conversationID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	if replyToID != nil {
		target, err := s.repo.ReplySnapshot(ctx, *replyToID)
		if err != nil {
			return nil, err
		}
		if target == nil || target.ConversationID != conversationID {
			return nil, fmt.Errorf("%w: reply target is not a message in this conversation", ErrValidation)
		}
	}

	now := time.Now().UTC()
	msg := &dbmysql.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       callerID,
		Content:        content,
		ReplyToID:      replyToID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	recipients, err := s.repo.SaveMessage(ctx, msg)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.notifier.EmitMessage(ctx, notify.OpInsert, recipients, msg, nil)

	return msg, nil
}

// EditMessage requires the caller to still be a participant: authorship alone
// is not enough once the sender has left or been removed.
func (s *conversationService) EditMessage(ctx context.Context, callerID, messageID, content string) (*dbmysql.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	}

	msg, err := s.repo.MessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.members.IsParticipant(ctx, msg.ConversationID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}
	if msg.SenderID != callerID {
		return nil, ErrNotSender
	}

	old := *msg
	msg.Content = content
	msg.Edited = true
	msg.UpdatedAt = time.Now().UTC()

	recipients, err := s.repo.UpdateMessage(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.notifier.EmitMessage(ctx, notify.OpUpdate, recipients, msg, &old)

	return msg, nil
}

func (s *conversationService) DeleteMessage(ctx context.Context, callerID, messageID string) error {
	msg, err := s.repo.MessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ok, err := s.members.IsParticipant(ctx, msg.ConversationID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotParticipant
	}
	if msg.SenderID != callerID {
		return ErrNotSender
	}

	recipients, err := s.repo.SoftDeleteMessage(ctx, msg)
	if err != nil {
		return err
	}

	s.notifier.EmitMessage(ctx, notify.OpDelete, recipients, nil, msg)

	return nil
}

func (s *conversationService) ListMessages(ctx context.Context, callerID, conversationID string, limit, offset int) ([]*MessageView, error) {
	ok, err := s.members.IsParticipant(ctx, conversationID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	messages, err := s.repo.MessagesOf(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, err
	}

	replies := make(map[string]*ReplyView)
	views := make([]*MessageView, 0, len(messages))
	for _, msg := range messages {
		view := &MessageView{
			ID:             msg.ID,
			ConversationID: msg.ConversationID,
			SenderID:       msg.SenderID,
			Content:        msg.Content,
			Edited:         msg.Edited,
			CreatedAt:      msg.CreatedAt,
		}

		if msg.ReplyToID != nil {
			reply, cached := replies[*msg.ReplyToID]
			if !cached {
				reply, err = s.resolveReply(ctx, *msg.ReplyToID)
				if err != nil {
					return nil, err
				}
				replies[*msg.ReplyToID] = reply
			}
			view.ReplyTo = reply
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *conversationService) resolveReply(ctx context.Context, messageID string) (*ReplyView, error) {
	target, err := s.repo.ReplySnapshot(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.DeletedAt.Valid {
		return &ReplyView{ID: messageID, Deleted: true}, nil
	}
	return &ReplyView{ID: target.ID, Content: target.Content}, nil
}
