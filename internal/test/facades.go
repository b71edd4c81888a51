package test

import (
	"context"

	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/stream"
)

// OrdersFacadeStub implements the HTTP facade with overridable behaviour.
type OrdersFacadeStub struct {
	CatalogValue *model.Catalog
	Hub          *stream.Hub
	HealthErr    error

	PlaceOrderFn      func(context.Context, model.OrderDraft) (model.Order, error)
	PreviewOrderFn    func(model.OrderDraft) (model.Order, error)
	OrdersFn          func(context.Context, model.OrderFilter) ([]model.Order, error)
	SummaryFn         func(context.Context, model.OrderFilter) (model.Summary, error)
	PendingFn         func(context.Context, model.OrderFilter) ([]model.Order, error)
	ConfirmDeliveryFn func(context.Context, string) error
}

// Catalog returns configured catalog or the default one.
func (s OrdersFacadeStub) Catalog() *model.Catalog {
	if s.CatalogValue != nil {
		return s.CatalogValue
	}
	return model.DefaultCatalog()
}

// PlaceOrder delegates to PlaceOrderFn when provided.
func (s OrdersFacadeStub) PlaceOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, draft)
	}
	return model.Order{ID: "order-1", CustomerName: draft.CustomerName, Date: draft.Date}, nil
}

// PreviewOrder delegates to PreviewOrderFn when provided.
func (s OrdersFacadeStub) PreviewOrder(draft model.OrderDraft) (model.Order, error) {
	if s.PreviewOrderFn != nil {
		return s.PreviewOrderFn(draft)
	}
	return model.Order{CustomerName: draft.CustomerName, Date: draft.Date}, nil
}

// Orders delegates to OrdersFn when provided.
func (s OrdersFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return nil, nil
}

// Summary delegates to SummaryFn when provided.
func (s OrdersFacadeStub) Summary(ctx context.Context, filter model.OrderFilter) (model.Summary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, filter)
	}
	return model.Summary{PerProduct: []model.ProductTotal{}}, nil
}

// PendingDeliveries delegates to PendingFn when provided.
func (s OrdersFacadeStub) PendingDeliveries(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, filter)
	}
	return nil, nil
}

// ConfirmDelivery delegates to ConfirmDeliveryFn when provided.
func (s OrdersFacadeStub) ConfirmDelivery(ctx context.Context, id string) error {
	if s.ConfirmDeliveryFn != nil {
		return s.ConfirmDeliveryFn(ctx, id)
	}
	return nil
}

// Subscribe attaches to Hub, creating a private one when unset.
func (s OrdersFacadeStub) Subscribe() *stream.Subscription {
	hub := s.Hub
	if hub == nil {
		hub = stream.NewHub()
	}
	return hub.Subscribe()
}

// Health returns HealthErr.
func (s OrdersFacadeStub) Health(context.Context) error {
	return s.HealthErr
}
