package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel shared by all instances.
const DefaultChannel = "sweetorders:orders:changed"

const changedPayload = "changed"

// Redis fans change signals out to every instance through Redis pub/sub.
type Redis struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
	local   *Local

	mu     sync.Mutex
	pubsub *redis.PubSub
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRedis creates notifier publishing on channel.
func NewRedis(client *redis.Client, channel string, logger *slog.Logger) *Redis {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Redis{
		client:  client,
		channel: channel,
		logger:  logger,
		local:   NewLocal(),
	}
}

// Notify publishes a change. On failure the local instance is still signalled.
func (r *Redis) Notify(ctx context.Context) error {
	if err := r.client.Publish(ctx, r.channel, changedPayload).Err(); err != nil {
		_ = r.local.Notify(ctx)
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Changes returns signals received from the channel.
func (r *Redis) Changes() <-chan struct{} {
	return r.local.Changes()
}

// Start subscribes to the channel and forwards messages until Close.
func (r *Redis) Start(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}

	runCtx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	r.pubsub = pubsub
	r.cancel = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go r.forward(runCtx, pubsub.Channel())

	r.logger.Info("subscribed to order changes", slog.String("channel", r.channel))
	return nil
}

func (r *Redis) forward(ctx context.Context, messages <-chan *redis.Message) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			r.logger.Debug("order change received", slog.String("channel", msg.Channel))
			_ = r.local.Notify(ctx)
		}
	}
}

// Close unsubscribes and releases the client.
func (r *Redis) Close() error {
	r.mu.Lock()
	cancel, pubsub := r.cancel, r.pubsub
	r.cancel, r.pubsub = nil, nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()

	var err error
	if pubsub != nil {
		err = pubsub.Close()
	}
	_ = r.local.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}
