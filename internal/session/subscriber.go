package session

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Subscription is one live attachment to a delivery channel. Events closes
// when the subscription dies, however that happens; Err reports why, nil for
// an explicit Close.
type Subscription interface {
	Events() <-chan []byte
	Err() error
	Close() error
}

// Subscriber opens subscriptions. Subscribe returns only after the transport
// has acknowledged the subscription; callers must not assume readiness before
// that.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}

type redisSubscriber struct {
	rdb *redis.Client
}

func NewRedisSubscriber(rdb *redis.Client) Subscriber {
	return &redisSubscriber{rdb: rdb}
}

func (s *redisSubscriber) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	pubsub := s.rdb.Subscribe(ctx, channel)

	// Receive blocks until the broker confirms the subscription.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		events: make(chan []byte, 64),
	}
	go sub.pump()

	return sub, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	events chan []byte

	mu     sync.Mutex
	closed bool
	err    error
}

func (s *redisSubscription) pump() {
	defer close(s.events)
	for msg := range s.pubsub.Channel() {
		s.events <- []byte(msg.Payload)
	}

	// The broker channel ended on its own unless Close was called first.
	s.mu.Lock()
	if !s.closed {
		s.err = errors.New("delivery channel lost")
	}
	s.mu.Unlock()
}

func (s *redisSubscription) Events() <-chan []byte {
	return s.events
}

func (s *redisSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *redisSubscription) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.pubsub.Close()
}
