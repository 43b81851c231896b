// Package events provides a topic-keyed observer hub on top of package
// delegate.
//
// A Hub is the registration layer the delegate core leaves to callers: it
// owns one multicast per topic, shards topics across mutex-guarded
// partitions, and dispatches published payloads to every subscriber in
// registration order. Subscribers are delegates returning error; Publish
// aggregates the non-nil errors of one dispatch into a single combined
// error.
package events

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/stdexgo/stdex/delegate"
)

const defaultShards = 4

// Subscription identifies one registration on a hub. Two subscriptions of
// the same delegate on the same topic are independent registrations with
// distinct IDs.
type Subscription struct {
	ID           uuid.UUID
	Topic        string
	RegisteredAt time.Time
}

// Hub dispatches payloads of type P to topic subscribers. Safe for
// concurrent use; all mutation and dispatch of one topic is serialized by
// its shard's mutex.
type Hub[P any] struct {
	logger *zap.Logger
	shards []*shard[P]
}

type shard[P any] struct {
	mu     sync.Mutex
	topics map[string]*topicState[P]
}

type topicState[P any] struct {
	subscribers delegate.MultiDelegate[P, error]
	records     []record[P]
}

type record[P any] struct {
	sub Subscription
	d   delegate.Delegate[P, error]
}

// HubOption configures a Hub.
type HubOption func(*hubConfig)

type hubConfig struct {
	logger *zap.Logger
	shards int
}

// WithLogger sets the logger used for registration and dispatch events.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) HubOption {
	return func(c *hubConfig) { c.logger = logger }
}

// WithShards sets the number of topic partitions. Panics if n < 1.
func WithShards(n int) HubOption {
	if n < 1 {
		panic("events: number of shards cannot be less than 1")
	}
	return func(c *hubConfig) { c.shards = n }
}

// NewHub returns an empty hub.
func NewHub[P any](opts ...HubOption) *Hub[P] {
	cfg := hubConfig{
		logger: zap.NewNop(),
		shards: defaultShards,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	shards := make([]*shard[P], cfg.shards)
	for i := range shards {
		shards[i] = &shard[P]{topics: make(map[string]*topicState[P])}
	}
	return &Hub[P]{logger: cfg.logger, shards: shards}
}

// Subscribe registers d under topic and returns its subscription token.
// Subscribing an empty delegate is rejected with delegate.ErrEmptyDelegate.
// The hub stores the delegate by value, so the registration keeps the
// referenced object or closure reachable until it is unsubscribed.
func (h *Hub[P]) Subscribe(topic string, d delegate.Delegate[P, error]) (Subscription, error) {
	if d.Empty() {
		return Subscription{}, delegate.ErrEmptyDelegate
	}

	sub := Subscription{
		ID:           uuid.New(),
		Topic:        topic,
		RegisteredAt: time.Now(),
	}

	s := h.shardFor(topic)
	s.mu.Lock()
	state, ok := s.topics[topic]
	if !ok {
		state = &topicState[P]{}
		s.topics[topic] = state
	}
	state.subscribers.Add(d)
	state.records = append(state.records, record[P]{sub: sub, d: d})
	s.mu.Unlock()

	h.logger.Debug("subscribed",
		zap.String("topic", topic),
		zap.String("subscription", sub.ID.String()),
	)
	return sub, nil
}

// Unsubscribe removes exactly the registration identified by sub and
// reports whether it was found. Surviving registrations keep dispatching in
// their original registration order, even when the removed registration was
// a duplicate of one of them.
func (h *Hub[P]) Unsubscribe(sub Subscription) bool {
	s := h.shardFor(sub.Topic)
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.topics[sub.Topic]
	if !ok {
		return false
	}
	for i, rec := range state.records {
		if rec.sub.ID != sub.ID {
			continue
		}
		state.records = append(state.records[:i], state.records[i+1:]...)
		if len(state.records) == 0 {
			delete(s.topics, sub.Topic)
		} else {
			// Removing the first record equal to rec.d could drop an
			// earlier duplicate and desynchronize dispatch order from
			// the records; rebuild the multicast from the survivors.
			state.subscribers.Clear()
			for _, r := range state.records {
				state.subscribers.Add(r.d)
			}
		}
		h.logger.Debug("unsubscribed",
			zap.String("topic", sub.Topic),
			zap.String("subscription", sub.ID.String()),
		)
		return true
	}
	return false
}

// Publish dispatches payload to every subscriber of topic in registration
// order and returns the subscribers' non-nil errors combined into one.
// Publishing to a topic without subscribers is a no-op.
//
// Dispatch runs over a snapshot of the registrations taken when Publish is
// called: subscribers may subscribe, unsubscribe, or publish on the same
// hub, and registration changes made during a dispatch only affect later
// publishes.
func (h *Hub[P]) Publish(topic string, payload P) error {
	s := h.shardFor(topic)
	s.mu.Lock()
	state, ok := s.topics[topic]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	snapshot := state.subscribers.Clone()
	s.mu.Unlock()

	var combined error
	snapshot.InvokeWith(payload, func(index int, result *error) {
		if *result != nil {
			h.logger.Warn("subscriber failed",
				zap.String("topic", topic),
				zap.Int("index", index),
				zap.Error(*result),
			)
			combined = multierr.Append(combined, *result)
		}
	})
	return combined
}

// Subscribers returns the number of registrations under topic.
func (h *Hub[P]) Subscribers(topic string) int {
	s := h.shardFor(topic)
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.topics[topic]
	if !ok {
		return 0
	}
	return state.subscribers.Len()
}

// Clear drops every registration under topic.
func (h *Hub[P]) Clear(topic string) {
	s := h.shardFor(topic)
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.topics[topic]; ok {
		state.subscribers.Clear()
		delete(s.topics, topic)
	}
}

// RegisteredDuring returns the topic's subscriptions whose registration
// time falls inside span, in registration order.
func (h *Hub[P]) RegisteredDuring(topic string, span TimeSpan) []Subscription {
	s := h.shardFor(topic)
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.topics[topic]
	if !ok {
		return nil
	}
	var subs []Subscription
	for _, rec := range state.records {
		if span.Contains(rec.sub.RegisteredAt) {
			subs = append(subs, rec.sub)
		}
	}
	return subs
}

func (h *Hub[P]) shardFor(topic string) *shard[P] {
	switch len(h.shards) {
	case 0:
		panic("events: number of shards cannot be 0")
	case 1:
		return h.shards[0]
	default:
		return h.shards[xxhash.Sum64String(topic)%uint64(len(h.shards))]
	}
}
