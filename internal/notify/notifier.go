// Package notify carries "orders changed" signals between writers and the snapshot poller.
package notify

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Notify after Close.
var ErrClosed = errors.New("notifier closed")

// Notifier publishes and consumes order collection change signals.
type Notifier interface {
	Notify(ctx context.Context) error
	Changes() <-chan struct{}
	Close() error
}

// Local is an in-process notifier. Pending signals coalesce into one.
type Local struct {
	mu     sync.Mutex
	ch     chan struct{}
	closed bool
}

// NewLocal creates in-process notifier.
func NewLocal() *Local {
	return &Local{ch: make(chan struct{}, 1)}
}

// Notify signals a change without blocking.
func (l *Local) Notify(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	select {
	case l.ch <- struct{}{}:
	default:
	}
	return nil
}

// Changes returns the signal channel. It is closed by Close.
func (l *Local) Changes() <-chan struct{} {
	return l.ch
}

// Close stops delivering signals.
func (l *Local) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.ch)
	}
	return nil
}
