package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/sweetorders/internal/domain/errors"
	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/domain/repository"
)

// OrderRepositoryStub keeps orders in memory and lets tests override behaviour.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, model.Order) (string, error)
	MarkDeliveredFn func(context.Context, string) error
	ListFn          func(context.Context) ([]model.Record, error)

	Records        []model.Record
	Created        []model.Order
	DeliveredCalls []string

	mu   sync.Mutex
	next int
}

// Create stores order and returns sequential identifiers.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (string, error) {
	s.mu.Lock()
	s.Created = append(s.Created, order)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	order.ID = fmt.Sprintf("order-%d", s.next)
	s.Records = append(s.Records, model.Record{Order: order})
	return order.ID, nil
}

// MarkDelivered applies the delivered transition to stored records.
func (s *OrderRepositoryStub) MarkDelivered(ctx context.Context, id string) error {
	s.mu.Lock()
	s.DeliveredCalls = append(s.DeliveredCalls, id)
	s.mu.Unlock()
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Records {
		if s.Records[i].Order.ID != id {
			continue
		}
		if s.Records[i].Order.Delivered {
			return domainErrors.ErrAlreadyDelivered
		}
		s.Records[i].Order.Delivered = true
		return nil
	}
	return domainErrors.ErrNotFound
}

// List returns stored records.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Record, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Record, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

// CreatedCount returns number of Create invocations.
func (s *OrderRepositoryStub) CreatedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Created)
}

// NotifierStub counts change notifications.
type NotifierStub struct {
	Err error

	mu     sync.Mutex
	calls  int
	ch     chan struct{}
	closed bool
}

// NewNotifierStub returns a notifier whose Changes channel is driven by Notify.
func NewNotifierStub() *NotifierStub {
	return &NotifierStub{ch: make(chan struct{}, 1)}
}

// Notify records the call and signals Changes.
func (n *NotifierStub) Notify(context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	if n.ch != nil && !n.closed {
		select {
		case n.ch <- struct{}{}:
		default:
		}
	}
	return n.Err
}

// Changes exposes signals produced by Notify.
func (n *NotifierStub) Changes() <-chan struct{} {
	return n.ch
}

// Close closes the Changes channel once.
func (n *NotifierStub) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ch != nil && !n.closed {
		n.closed = true
		close(n.ch)
	}
	return nil
}

// Calls returns number of Notify invocations.
func (n *NotifierStub) Calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

// HealthCheckerStub reports a fixed health result.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (h HealthCheckerStub) HealthCheck(context.Context) error {
	return h.Err
}

// BackendStub stands in for an opened document store.
type BackendStub struct {
	Repo      *OrderRepositoryStub
	HealthErr error

	mu     sync.Mutex
	closed int
}

// HealthCheck returns HealthErr.
func (b *BackendStub) HealthCheck(context.Context) error {
	return b.HealthErr
}

// Orders returns Repo, allocating an empty one on first use.
func (b *BackendStub) Orders() repository.OrderRepository {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Repo == nil {
		b.Repo = &OrderRepositoryStub{}
	}
	return b.Repo
}

// Close counts invocations.
func (b *BackendStub) Close() {
	b.mu.Lock()
	b.closed++
	b.mu.Unlock()
}

// Closed reports how many times Close ran.
func (b *BackendStub) Closed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
