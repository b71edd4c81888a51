package app

import (
	"context"

	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/domain/repository"
	"github.com/polkiloo/sweetorders/internal/stream"
	"github.com/polkiloo/sweetorders/internal/usecase"
)

// OrdersFacade is the single entry point used by the HTTP layer.
type OrdersFacade struct {
	orders *usecase.OrderUseCase
	hub    *stream.Hub
	health repository.HealthChecker
}

func NewOrdersFacade(orders *usecase.OrderUseCase, hub *stream.Hub, health repository.HealthChecker) *OrdersFacade {
	return &OrdersFacade{orders: orders, hub: hub, health: health}
}

func (f *OrdersFacade) Catalog() *model.Catalog {
	return f.orders.Catalog()
}

func (f *OrdersFacade) PlaceOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error) {
	return f.orders.Save(ctx, draft)
}

// PreviewOrder validates and totals a draft without saving it.
func (f *OrdersFacade) PreviewOrder(draft model.OrderDraft) (model.Order, error) {
	return usecase.BuildOrder(draft, f.orders.Catalog())
}

func (f *OrdersFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	orders, err := f.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.Filter(orders, filter), nil
}

func (f *OrdersFacade) Summary(ctx context.Context, filter model.OrderFilter) (model.Summary, error) {
	orders, err := f.Orders(ctx, filter)
	if err != nil {
		return model.Summary{}, err
	}
	return usecase.Summarize(orders), nil
}

func (f *OrdersFacade) PendingDeliveries(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	orders, err := f.Orders(ctx, filter)
	if err != nil {
		return nil, err
	}
	return usecase.PendingDeliveries(orders), nil
}

func (f *OrdersFacade) ConfirmDelivery(ctx context.Context, id string) error {
	return f.orders.ConfirmDelivery(ctx, id)
}

// Subscribe attaches to the live snapshot stream.
func (f *OrdersFacade) Subscribe() *stream.Subscription {
	return f.hub.Subscribe()
}

func (f *OrdersFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
