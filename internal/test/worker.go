package test

import (
	"context"
	"sync"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// OrderSourceStub serves scripted order lists to the snapshot poller.
type OrderSourceStub struct {
	sync.Mutex
	Orders [][]model.Order
	ListFn func(ctx context.Context) ([]model.Order, error)
	calls  int
}

// List returns the next scripted batch; the last batch repeats.
func (s *OrderSourceStub) List(ctx context.Context) ([]model.Order, error) {
	s.Lock()
	call := s.calls
	s.calls++
	fn := s.ListFn
	var batch []model.Order
	if len(s.Orders) > 0 {
		idx := call
		if idx >= len(s.Orders) {
			idx = len(s.Orders) - 1
		}
		batch = s.Orders[idx]
	}
	s.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	return batch, nil
}

// Calls returns the number of List invocations.
func (s *OrderSourceStub) Calls() int {
	s.Lock()
	defer s.Unlock()
	return s.calls
}
