package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/sweetorders/internal/domain/errors"
	"github.com/polkiloo/sweetorders/internal/domain/model"
	testhelpers "github.com/polkiloo/sweetorders/internal/test"
)

func validDraft() model.OrderDraft {
	return model.OrderDraft{
		CustomerName: "  Asha ",
		Date:         "01/01/2024",
		Items: []model.ItemDraft{
			{Product: "Bundi", Quantity: "2", UnitPrice: "400.0"},
			{Product: "Mathadi", Quantity: "1"},
		},
	}
}

func TestBuildOrder(t *testing.T) {
	order, err := BuildOrder(validDraft(), model.DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.CustomerName != "Asha" {
		t.Fatalf("expected trimmed name, got %q", order.CustomerName)
	}
	if order.ID != "" || order.Delivered {
		t.Fatalf("new order must be unsaved and pending: %+v", order)
	}
	if len(order.Items) != 2 || order.Items[1].ProductName != "Mathadi" {
		t.Fatalf("unexpected items %+v", order.Items)
	}
	if !order.Items[1].UnitPrice.Equal(money("350")) {
		t.Fatalf("expected catalog price for empty unit price, got %s", order.Items[1].UnitPrice)
	}
	if !order.TotalPrice.Equal(money("1150")) {
		t.Fatalf("expected total 1150, got %s", order.TotalPrice)
	}
}

func TestBuildOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.OrderDraft)
		want   error
		field  string
		item   int
	}{
		{name: "empty name", mutate: func(d *model.OrderDraft) { d.CustomerName = "   " }, want: domainErrors.ErrEmptyCustomerName, field: "customerName", item: -1},
		{name: "empty date", mutate: func(d *model.OrderDraft) { d.Date = "" }, want: domainErrors.ErrEmptyDate, field: "date", item: -1},
		{name: "no items", mutate: func(d *model.OrderDraft) { d.Items = nil }, want: domainErrors.ErrNoItems, item: -1},
		{name: "placeholder product", mutate: func(d *model.OrderDraft) { d.Items[1].Product = model.ProductPlaceholder }, want: domainErrors.ErrProductNotSelected, field: "product", item: 1},
		{name: "unknown product", mutate: func(d *model.OrderDraft) { d.Items[0].Product = "Jalebi" }, want: domainErrors.ErrUnknownProduct, field: "product", item: 0},
		{name: "missing quantity", mutate: func(d *model.OrderDraft) { d.Items[0].Quantity = "" }, want: domainErrors.ErrMissingQuantity, field: "quantity", item: 0},
		{name: "non numeric quantity", mutate: func(d *model.OrderDraft) { d.Items[0].Quantity = "abc" }, want: domainErrors.ErrInvalidNumbers, field: "quantity", item: 0},
		{name: "fractional quantity", mutate: func(d *model.OrderDraft) { d.Items[0].Quantity = "1.5" }, want: domainErrors.ErrInvalidNumbers, field: "quantity", item: 0},
		{name: "zero quantity", mutate: func(d *model.OrderDraft) { d.Items[0].Quantity = "0" }, want: domainErrors.ErrInvalidQuantity, field: "quantity", item: 0},
		{name: "negative quantity", mutate: func(d *model.OrderDraft) { d.Items[0].Quantity = "-2" }, want: domainErrors.ErrInvalidQuantity, field: "quantity", item: 0},
		{name: "non numeric price", mutate: func(d *model.OrderDraft) { d.Items[0].UnitPrice = "four" }, want: domainErrors.ErrInvalidNumbers, field: "unitPrice", item: 0},
		{name: "negative price", mutate: func(d *model.OrderDraft) { d.Items[0].UnitPrice = "-1" }, want: domainErrors.ErrInvalidNumbers, field: "unitPrice", item: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			_, err := BuildOrder(draft, model.DefaultCatalog())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var ve *domainErrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %T", err)
			}
			if ve.Field != tt.field || ve.Item != tt.item {
				t.Fatalf("expected field %q item %d, got %q %d", tt.field, tt.item, ve.Field, ve.Item)
			}
		})
	}
}

func TestBuildOrderInvalidNumbersMessage(t *testing.T) {
	draft := validDraft()
	draft.Items[0].Quantity = "abc"
	_, err := BuildOrder(draft, model.DefaultCatalog())
	if err == nil || err.Error() != "item 1: invalid numbers" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestBuildOrderAcceptsGeneratedDrafts(t *testing.T) {
	catalog := model.DefaultCatalog()
	for i := 0; i < 50; i++ {
		draft := testhelpers.RandomDraft(catalog, 1+i%4)
		order, err := BuildOrder(draft, catalog)
		if err != nil {
			t.Fatalf("draft %+v rejected: %v", draft, err)
		}
		if len(order.Items) != len(draft.Items) {
			t.Fatalf("expected %d items, got %d", len(draft.Items), len(order.Items))
		}
		if !order.TotalPrice.Equal(ComputeTotal(order.Items)) {
			t.Fatalf("total %s does not match items", order.TotalPrice)
		}
		if order.Delivered || order.ID != "" {
			t.Fatalf("new order must be pending without id: %+v", order)
		}
	}
}

func TestBuildOrderRejectsPricesBeyondStorableRange(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ItemDraft
		field string
		item  int
	}{
		{name: "unit price overflows", items: []model.ItemDraft{{Product: "Bundi", Quantity: "1", UnitPrice: "1e400"}}, field: "unitPrice", item: 0},
		{name: "line total overflows", items: []model.ItemDraft{{Product: "Bundi", Quantity: "1000", UnitPrice: "1e306"}}, field: "quantity", item: 0},
		{
			name: "order total overflows",
			items: []model.ItemDraft{
				{Product: "Bundi", Quantity: "1", UnitPrice: "1.5e308"},
				{Product: "Khaja", Quantity: "1", UnitPrice: "1.5e308"},
			},
			item: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := model.OrderDraft{CustomerName: "Asha", Date: "05/03/2024", Items: tt.items}
			_, err := BuildOrder(draft, model.DefaultCatalog())
			var ve *domainErrors.ValidationError
			if !errors.As(err, &ve) || !errors.Is(err, domainErrors.ErrInvalidNumbers) {
				t.Fatalf("expected invalid numbers, got %v", err)
			}
			if ve.Field != tt.field || ve.Item != tt.item {
				t.Fatalf("unexpected field %q item %d", ve.Field, ve.Item)
			}
		})
	}
}
