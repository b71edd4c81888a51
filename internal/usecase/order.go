package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/domain/repository"
)

// ChangeNotifier announces that the order collection changed.
type ChangeNotifier interface {
	Notify(ctx context.Context) error
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	notifier ChangeNotifier
	catalog  *model.Catalog
	logger   *slog.Logger

	saves singleflight.Group
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, notifier ChangeNotifier, catalog *model.Catalog, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, notifier: notifier, catalog: catalog, logger: logger}
}

// Catalog returns the product catalog orders are validated against.
func (u *OrderUseCase) Catalog() *model.Catalog {
	return u.catalog
}

// Save validates the draft and persists a new order. Identical drafts submitted while
// a save is still in flight share its result instead of creating a second order.
func (u *OrderUseCase) Save(ctx context.Context, draft model.OrderDraft) (model.Order, error) {
	order, err := BuildOrder(draft, u.catalog)
	if err != nil {
		return model.Order{}, err
	}

	// The create is shared with concurrent callers, so it must outlive the first request.
	saveCtx := context.WithoutCancel(ctx)
	leader := false
	v, err, shared := u.saves.Do(fingerprint(order), func() (any, error) {
		leader = true
		id, err := u.orders.Create(saveCtx, order)
		if err != nil {
			return nil, fmt.Errorf("failed to save order: %w", err)
		}
		saved := order
		saved.ID = id
		u.notify(saveCtx)
		return saved, nil
	})
	if err != nil {
		return model.Order{}, err
	}
	if shared && !leader {
		u.logger.Debug("duplicate order submission collapsed", slog.String("id", v.(model.Order).ID))
	}
	return v.(model.Order), nil
}

// Records returns every stored document, including ones that failed to decode.
func (u *OrderUseCase) Records(ctx context.Context) ([]model.Record, error) {
	records, err := u.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return records, nil
}

// List returns decodable orders in store order. Malformed documents are skipped.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	records, err := u.Records(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(records))
	for _, r := range records {
		if r.Err != nil {
			u.logger.Debug("skipping malformed order document", slog.String("id", r.Order.ID), slog.String("error", r.Err.Error()))
			continue
		}
		orders = append(orders, r.Order)
	}
	return orders, nil
}

// ConfirmDelivery marks order delivered. The transition is one-way.
func (u *OrderUseCase) ConfirmDelivery(ctx context.Context, id string) error {
	if err := u.orders.MarkDelivered(ctx, id); err != nil {
		return fmt.Errorf("failed to confirm delivery: %w", err)
	}
	u.notify(ctx)
	return nil
}

func (u *OrderUseCase) notify(ctx context.Context) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx); err != nil {
		u.logger.Warn("order change notification failed", slog.String("error", err.Error()))
	}
}

func fingerprint(o model.Order) string {
	var b strings.Builder
	b.WriteString(o.CustomerName)
	b.WriteByte(0x1f)
	b.WriteString(o.Date)
	for _, item := range o.Items {
		b.WriteByte(0x1e)
		b.WriteString(item.ProductName)
		b.WriteByte(0x1f)
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteByte(0x1f)
		b.WriteString(item.UnitPrice.String())
	}
	return b.String()
}
