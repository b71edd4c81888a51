// Package stream fans full order snapshots out to live subscribers.
package stream

import (
	"sync"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// Hub keeps the latest snapshot and delivers every replacement to subscribers.
// A subscriber that falls behind only ever sees the newest snapshot.
type Hub struct {
	mu      sync.Mutex
	latest  model.Snapshot
	hasData bool
	closed  bool
	subs    map[*Subscription]struct{}
}

// Subscription receives snapshots until closed.
type Subscription struct {
	hub  *Hub
	ch   chan model.Snapshot
	once sync.Once
}

// NewHub creates empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Publish replaces the current snapshot and returns it with its version.
func (h *Hub) Publish(orders []model.Order) model.Snapshot {
	copied := make([]model.Order, len(orders))
	copy(copied, orders)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = model.Snapshot{Version: h.latest.Version + 1, Orders: copied}
	h.hasData = true
	if h.closed {
		return h.latest
	}
	for sub := range h.subs {
		sub.offer(h.latest)
	}
	return h.latest
}

// Latest returns the current snapshot, if any has been published.
func (h *Hub) Latest() (model.Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.hasData
}

// Subscribe registers a subscriber; the current snapshot is queued right away.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{hub: h, ch: make(chan model.Snapshot, 1)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.once.Do(func() { close(sub.ch) })
		return sub
	}
	h.subs[sub] = struct{}{}
	if h.hasData {
		sub.offer(h.latest)
	}
	return sub
}

// Subscribers reports the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close ends every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for sub := range h.subs {
		delete(h.subs, sub)
		sub.once.Do(func() { close(sub.ch) })
	}
}

// C returns the delivery channel. It is closed when the subscription ends.
func (s *Subscription) C() <-chan model.Snapshot {
	return s.ch
}

// Close detaches the subscription from the hub.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	delete(s.hub.subs, s)
	s.once.Do(func() { close(s.ch) })
}

// offer must be called with the hub lock held.
func (s *Subscription) offer(snapshot model.Snapshot) {
	select {
	case s.ch <- snapshot:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- snapshot:
	default:
	}
}
