package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/sweetorders/internal/app"
	"github.com/polkiloo/sweetorders/internal/config"
	"github.com/polkiloo/sweetorders/internal/logger"
	"github.com/polkiloo/sweetorders/internal/notify"
	"github.com/polkiloo/sweetorders/internal/server/http/router"
	"github.com/polkiloo/sweetorders/internal/storage"
	"github.com/polkiloo/sweetorders/internal/usecase"
)

// Module assembles the full application graph; opts may replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		notify.Module,
		fx.Provide(func(n notify.Notifier) usecase.ChangeNotifier { return n }),
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
