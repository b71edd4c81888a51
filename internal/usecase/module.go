package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	model.DefaultCatalog,
	NewOrderUseCase,
)
