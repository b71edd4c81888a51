package model

import "github.com/shopspring/decimal"

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// LineTotal returns quantity multiplied by unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order describes a customer order recorded by staff.
type Order struct {
	ID           string
	CustomerName string
	Date         string
	Items        []OrderItem
	TotalPrice   decimal.Decimal
	Delivered    bool
}

// CanConfirmDelivery reports whether the delivery confirmation action applies.
func (o Order) CanConfirmDelivery() bool {
	return !o.Delivered
}

// HasProduct reports whether any item of the order is for the named product.
func (o Order) HasProduct(name string) bool {
	for _, item := range o.Items {
		if item.ProductName == name {
			return true
		}
	}
	return false
}

// Record is a single stored document decoded into an order.
// Err is set when the document could not be decoded; Order then carries only the ID.
type Record struct {
	Order Order
	Err   error
}
