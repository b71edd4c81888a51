package handlers

import (
	"context"

	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/stream"
)

// CatalogFacade exposes the static product catalog.
type CatalogFacade interface {
	Catalog() *model.Catalog
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error)
	PreviewOrder(draft model.OrderDraft) (model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	Summary(ctx context.Context, filter model.OrderFilter) (model.Summary, error)
	PendingDeliveries(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	ConfirmDelivery(ctx context.Context, id string) error
}

// StreamFacade attaches clients to live order snapshots.
type StreamFacade interface {
	Subscribe() *stream.Subscription
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// SweetOrdersFacade aggregates the full set of operations used across handlers.
type SweetOrdersFacade interface {
	CatalogFacade
	OrderFacade
	StreamFacade
	HealthFacade
}
