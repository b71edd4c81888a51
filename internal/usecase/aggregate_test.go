package usecase

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func scenarioOrders() []model.Order {
	return []model.Order{
		{
			ID:           "a",
			CustomerName: "Asha",
			Date:         "01/01/2024",
			Items:        []model.OrderItem{{ProductName: "Bundi", Quantity: 2, UnitPrice: money("400.0")}},
			TotalPrice:   money("800.0"),
		},
		{
			ID:           "r",
			CustomerName: "Ravi",
			Date:         "02/01/2024",
			Items: []model.OrderItem{
				{ProductName: "Khaja", Quantity: 1, UnitPrice: money("400.0")},
				{ProductName: "Mathadi", Quantity: 1, UnitPrice: money("350.0")},
			},
			TotalPrice: money("750.0"),
			Delivered:  true,
		},
	}
}

func ids(orders []model.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestComputeTotal(t *testing.T) {
	if got := ComputeTotal(nil); !got.IsZero() {
		t.Fatalf("expected zero for empty items, got %s", got)
	}

	items := []model.OrderItem{
		{ProductName: "Bundi", Quantity: 2, UnitPrice: money("400")},
		{ProductName: "Champakali Ganthiya", Quantity: 3, UnitPrice: money("250.10")},
	}
	if got := ComputeTotal(items); !got.Equal(money("1550.30")) {
		t.Fatalf("expected 1550.30, got %s", got)
	}
}

func TestFilter(t *testing.T) {
	orders := scenarioOrders()
	orders = append(orders, model.Order{
		ID:    "m",
		Date:  "01/01/2024",
		Items: []model.OrderItem{{ProductName: "Mathadi", Quantity: 1, UnitPrice: money("350")}},
	})

	tests := []struct {
		name   string
		filter model.OrderFilter
		want   []string
	}{
		{name: "no criteria", filter: model.OrderFilter{}, want: []string{"a", "r", "m"}},
		{name: "product", filter: model.OrderFilter{Product: strPtr("Bundi")}, want: []string{"a"}},
		{name: "product in second item", filter: model.OrderFilter{Product: strPtr("Mathadi")}, want: []string{"r", "m"}},
		{name: "date", filter: model.OrderFilter{Date: strPtr("01/01/2024")}, want: []string{"a", "m"}},
		{name: "product and date", filter: model.OrderFilter{Product: strPtr("Mathadi"), Date: strPtr("01/01/2024")}, want: []string{"m"}},
		{name: "no match", filter: model.OrderFilter{Product: strPtr("Mohanthad")}, want: []string{}},
		{name: "present empty product is not absent", filter: model.OrderFilter{Product: strPtr("")}, want: []string{}},
		{name: "date is exact text", filter: model.OrderFilter{Date: strPtr("1/1/2024")}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(orders, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, model.OrderFilter{Product: strPtr("Bundi")}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	orders := scenarioOrders()
	f := model.OrderFilter{Product: strPtr("Khaja"), Date: strPtr("02/01/2024")}
	once := Filter(orders, f)
	twice := Filter(once, f)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterRemovingLastMatchingItem(t *testing.T) {
	order := model.Order{ID: "x", Items: []model.OrderItem{
		{ProductName: "Bundi", Quantity: 1, UnitPrice: money("400")},
		{ProductName: "Bundi", Quantity: 2, UnitPrice: money("400")},
		{ProductName: "Khaja", Quantity: 1, UnitPrice: money("400")},
	}}
	f := model.OrderFilter{Product: strPtr("Bundi")}

	order.Items = order.Items[1:]
	if got := Filter([]model.Order{order}, f); len(got) != 1 {
		t.Fatalf("order with a remaining Bundi item must stay, got %v", got)
	}
	order.Items = order.Items[1:]
	if got := Filter([]model.Order{order}, f); len(got) != 0 {
		t.Fatalf("order without Bundi items must be dropped, got %v", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if !s.GrandTotal.IsZero() {
		t.Fatalf("expected zero grand total, got %s", s.GrandTotal)
	}
	if s.PerProduct == nil || len(s.PerProduct) != 0 {
		t.Fatalf("expected empty per-product list, got %v", s.PerProduct)
	}
}

func TestSummarizeScenario(t *testing.T) {
	orders := scenarioOrders()

	filtered := Filter(orders, model.OrderFilter{Product: strPtr("Bundi")})
	if got := ids(filtered); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected Asha's order, got %v", got)
	}

	s := Summarize(orders)
	if !s.GrandTotal.Equal(money("1550.0")) {
		t.Fatalf("expected grand total 1550, got %s", s.GrandTotal)
	}

	want := []model.ProductTotal{
		{Product: "Bundi", Total: money("800")},
		{Product: "Khaja", Total: money("400")},
		{Product: "Mathadi", Total: money("350")},
	}
	if len(s.PerProduct) != len(want) {
		t.Fatalf("expected %d products, got %v", len(want), s.PerProduct)
	}
	for i, w := range want {
		if s.PerProduct[i].Product != w.Product || !s.PerProduct[i].Total.Equal(w.Total) {
			t.Fatalf("position %d: expected %+v, got %+v", i, w, s.PerProduct[i])
		}
	}
}

func TestSummarizeUsesStoredTotal(t *testing.T) {
	orders := []model.Order{{
		Items:      []model.OrderItem{{ProductName: "Bundi", Quantity: 1, UnitPrice: money("400")}},
		TotalPrice: money("999"),
	}}

	s := Summarize(orders)
	if !s.GrandTotal.Equal(money("999")) {
		t.Fatalf("expected stored total 999, got %s", s.GrandTotal)
	}
	if total, _ := s.ProductTotalOf("Bundi"); !total.Equal(money("400")) {
		t.Fatalf("expected per-product total from items, got %s", total)
	}
}

func TestSummarizeAccumulatesRepeatedProducts(t *testing.T) {
	orders := []model.Order{
		{Items: []model.OrderItem{{ProductName: "Mathadi", Quantity: 1, UnitPrice: money("350")}}},
		{Items: []model.OrderItem{
			{ProductName: "Bundi", Quantity: 1, UnitPrice: money("400")},
			{ProductName: "Mathadi", Quantity: 2, UnitPrice: money("350")},
		}},
	}
	s := Summarize(orders)
	if s.PerProduct[0].Product != "Mathadi" || !s.PerProduct[0].Total.Equal(money("1050")) {
		t.Fatalf("unexpected first entry %+v", s.PerProduct[0])
	}
	if s.PerProduct[1].Product != "Bundi" {
		t.Fatalf("expected first-appearance order, got %+v", s.PerProduct)
	}
}

func TestPendingDeliveries(t *testing.T) {
	orders := scenarioOrders()
	pending := PendingDeliveries(orders)
	if got := ids(pending); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected only undelivered order, got %v", got)
	}

	s := Summarize(orders)
	if !s.GrandTotal.Equal(money("1550")) {
		t.Fatalf("delivered orders must still be summarized, got %s", s.GrandTotal)
	}
}
