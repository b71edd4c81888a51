package model

import "github.com/shopspring/decimal"

// OrderFilter narrows an order collection. A nil field means the criterion is absent.
type OrderFilter struct {
	Product *string
	Date    *string
}

// ProductTotal is a per-product sales subtotal.
type ProductTotal struct {
	Product string
	Total   decimal.Decimal
}

// Summary aggregates sales over a set of orders.
type Summary struct {
	GrandTotal decimal.Decimal
	PerProduct []ProductTotal
}

// ProductTotalOf returns the subtotal for product and whether it had any sales.
func (s Summary) ProductTotalOf(product string) (decimal.Decimal, bool) {
	for _, pt := range s.PerProduct {
		if pt.Product == product {
			return pt.Total, true
		}
	}
	return decimal.Zero, false
}

// Snapshot is one full replacement of the order collection.
type Snapshot struct {
	Version uint64
	Orders  []Order
}
