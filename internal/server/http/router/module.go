package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/sweetorders/internal/app"
	"github.com/polkiloo/sweetorders/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(f *app.OrdersFacade) handlers.SweetOrdersFacade { return f },
	Setup,
)
