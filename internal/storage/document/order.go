// Package document holds the stored shape of an order shared by the document backends.
package document

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/sweetorders/internal/domain/errors"
	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// Item is a stored order line.
type Item struct {
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
}

// Order is a stored order document. Prices are kept as doubles.
type Order struct {
	ID           string  `json:"id" bson:"id"`
	CustomerName string  `json:"customerName" bson:"customerName"`
	Date         string  `json:"date" bson:"date"`
	Items        []Item  `json:"items" bson:"items"`
	TotalPrice   float64 `json:"totalPrice" bson:"totalPrice"`
	Delivered    bool    `json:"delivered" bson:"delivered"`
}

// FromOrder converts a domain order into its stored form.
func FromOrder(order model.Order) Order {
	doc := Order{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Date:         order.Date,
		Items:        make([]Item, 0, len(order.Items)),
		TotalPrice:   order.TotalPrice.InexactFloat64(),
		Delivered:    order.Delivered,
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, Item{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
		})
	}
	return doc
}

// ToOrder converts the stored form back; key is used when the id field was never stamped.
// Prices that are not finite numbers fail with ErrMalformedDocument.
func (d Order) ToOrder(key string) (model.Order, error) {
	id := d.ID
	if id == "" {
		id = key
	}
	if !finite(d.TotalPrice) {
		return model.Order{ID: id}, fmt.Errorf("%w: totalPrice is %v", domainErrors.ErrMalformedDocument, d.TotalPrice)
	}
	order := model.Order{
		ID:           id,
		CustomerName: d.CustomerName,
		Date:         d.Date,
		Items:        make([]model.OrderItem, 0, len(d.Items)),
		TotalPrice:   decimal.NewFromFloat(d.TotalPrice),
		Delivered:    d.Delivered,
	}
	for i, item := range d.Items {
		if !finite(item.UnitPrice) {
			return model.Order{ID: id}, fmt.Errorf("%w: item %d unitPrice is %v", domainErrors.ErrMalformedDocument, i, item.UnitPrice)
		}
		order.Items = append(order.Items, model.OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   decimal.NewFromFloat(item.UnitPrice),
		})
	}
	return order, nil
}

// ToRecord converts the document into a record, carrying any decode failure in Err.
func (d Order) ToRecord(key string) model.Record {
	order, err := d.ToOrder(key)
	return model.Record{Order: order, Err: err}
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
