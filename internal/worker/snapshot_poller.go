package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// OrderSource loads the complete, decoded order collection.
type OrderSource interface {
	List(ctx context.Context) ([]model.Order, error)
}

// SnapshotPublisher replaces the current snapshot with a new one.
type SnapshotPublisher interface {
	Publish(orders []model.Order) model.Snapshot
}

// SnapshotPoller reloads the order collection on start, on each change signal and on every tick,
// and publishes every successful load as a full snapshot.
type SnapshotPoller struct {
	source       OrderSource
	publisher    SnapshotPublisher
	changes      <-chan struct{}
	pollInterval time.Duration
	logger       *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSnapshotPoller constructs snapshot poller. A nil changes channel disables signal-driven reloads.
func NewSnapshotPoller(source OrderSource, publisher SnapshotPublisher, changes <-chan struct{}, pollInterval time.Duration, logger *slog.Logger) *SnapshotPoller {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	return &SnapshotPoller{
		source:       source,
		publisher:    publisher,
		changes:      changes,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Start launches background polling.
func (p *SnapshotPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.run(runCtx)
}

// Stop waits for the polling loop to finish.
func (p *SnapshotPoller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *SnapshotPoller) run(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	changes := p.changes
	p.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			p.refresh(ctx)
		}
	}
}

func (p *SnapshotPoller) refresh(ctx context.Context) {
	orders, err := p.source.List(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Error("load orders snapshot failed", slog.String("error", err.Error()))
		return
	}

	snapshot := p.publisher.Publish(orders)
	p.logger.Debug("orders snapshot published",
		slog.Uint64("version", snapshot.Version),
		slog.Int("orders", len(snapshot.Orders)),
	)
}
