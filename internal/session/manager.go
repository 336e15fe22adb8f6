package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"chatcore/internal/notify"
)

type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateSubscribed
	StateClosed
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateSubscribed:
		return "subscribed"
	case StateClosed:
		return "closed"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

var ErrAlreadyStarted = errors.New("subscription already active")

// Invalidations are the only thing a session does with delivery events:
// handling is idempotent cache invalidation, never incremental state
// application, which is why redundant delivery to multiple tabs is safe.
type Invalidations struct {
	// ConversationList fires for participant and conversation events and for
	// every message event (the latest-message preview must update).
	ConversationList func()
	// Conversation fires for message events with the affected conversation id.
	Conversation func(conversationID string)
}

// Manager owns exactly one subscription to one user's private channel for the
// lifetime of a session. It is the single session-root owner of the realtime
// attachment; views get invalidation callbacks, never their own subscription.
type Manager struct {
	userID string
	sub    Subscriber
	inv    Invalidations
	log    *zap.Logger

	mu      sync.Mutex
	state   State
	current Subscription
}

func NewManager(userID string, sub Subscriber, inv Invalidations, log *zap.Logger) *Manager {
	return &Manager{
		userID: userID,
		sub:    sub,
		inv:    inv,
		log:    log,
		state:  StateDisconnected,
	}
}

// Start opens the subscription on session start. Starting an already-active
// manager is a bug in the caller (it would leak a second channel) and errors.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateConnecting || m.state == StateSubscribed {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	m.state = StateConnecting
	m.mu.Unlock()

	return m.connect(ctx)
}

// EnsureLive is the liveness check run on foreground/visibility regain. It
// resubscribes only from a dead state, never blindly, so a live session cannot
// accumulate duplicate channels.
func (m *Manager) EnsureLive(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case StateClosed, StateErrored:
		m.state = StateConnecting
	default:
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	return m.connect(ctx)
}

func (m *Manager) connect(ctx context.Context) error {
	subscription, err := m.sub.Subscribe(ctx, notify.UserChannel(m.userID))
	if err != nil {
		m.mu.Lock()
		m.state = StateErrored
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	if m.state == StateDisconnected {
		// Close raced with connect: the session ended, drop the subscription.
		m.mu.Unlock()
		_ = subscription.Close()
		return nil
	}
	m.current = subscription
	m.state = StateSubscribed
	m.mu.Unlock()

	go m.loop(subscription)

	return nil
}

// Close tears the subscription down on session end. In-flight events not yet
// dispatched are dropped.
func (m *Manager) Close() {
	m.mu.Lock()
	current := m.current
	m.current = nil
	m.state = StateDisconnected
	m.mu.Unlock()

	if current != nil {
		_ = current.Close()
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// loop is the session's single event loop: one event at a time, in channel
// order. The per-channel FIFO guarantee depends on there being no parallel
// dispatch here.
func (m *Manager) loop(subscription Subscription) {
	for payload := range subscription.Events() {
		m.dispatch(payload)
	}

	m.mu.Lock()
	if m.state == StateSubscribed && m.current == subscription {
		if err := subscription.Err(); err != nil {
			m.log.Warn("delivery subscription lost", zap.String("user_id", m.userID), zap.Error(err))
			m.state = StateErrored
		} else {
			m.state = StateClosed
		}
		m.current = nil
	}
	m.mu.Unlock()
}

type eventEnvelope struct {
	Table     string          `json:"table"`
	Operation string          `json:"operation"`
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record"`
}

func (m *Manager) dispatch(payload []byte) {
	var env eventEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		m.log.Warn("malformed delivery event", zap.Error(err))
		return
	}

	switch env.Table {
	case notify.TableParticipants, notify.TableConversations:
		if m.inv.ConversationList != nil {
			m.inv.ConversationList()
		}
	case notify.TableMessages:
		if m.inv.Conversation != nil {
			if convID := conversationIDOf(env); convID != "" {
				m.inv.Conversation(convID)
			}
		}
		if m.inv.ConversationList != nil {
			m.inv.ConversationList()
		}
	default:
		m.log.Warn("delivery event for unknown table", zap.String("table", env.Table))
	}
}

func conversationIDOf(env eventEnvelope) string {
	var record struct {
		ConversationID string `json:"conversation_id"`
	}
	if len(env.Record) > 0 && string(env.Record) != "null" {
		if json.Unmarshal(env.Record, &record) == nil && record.ConversationID != "" {
			return record.ConversationID
		}
	}
	if len(env.OldRecord) > 0 && string(env.OldRecord) != "null" {
		if json.Unmarshal(env.OldRecord, &record) == nil {
			return record.ConversationID
		}
	}
	return ""
}
