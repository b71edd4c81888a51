package notify

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/sweetorders/internal/config"
)

// Module provides the change notifier: Redis when configured, in-process otherwise.
var Module = fx.Options(
	fx.Provide(newNotifier),
	fx.Invoke(registerLifecycle),
)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) Notifier {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("using in-process change notifier")
		return NewLocal()
	}
	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	return NewRedis(client, DefaultChannel, p.Logger)
}

type starter interface {
	Start(ctx context.Context) error
}

func registerLifecycle(lc fx.Lifecycle, notifier Notifier) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if s, ok := notifier.(starter); ok {
				return s.Start(ctx)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return notifier.Close()
		},
	})
}
