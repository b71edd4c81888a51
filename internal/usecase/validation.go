package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/sweetorders/internal/domain/errors"
	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// BuildOrder validates draft input and constructs a new undelivered order.
// The first failing check is reported; nothing is built on failure.
func BuildOrder(draft model.OrderDraft, catalog *model.Catalog) (model.Order, error) {
	name := strings.TrimSpace(draft.CustomerName)
	if name == "" {
		return model.Order{}, &domainErrors.ValidationError{Field: "customerName", Item: -1, Err: domainErrors.ErrEmptyCustomerName}
	}
	date := strings.TrimSpace(draft.Date)
	if date == "" {
		return model.Order{}, &domainErrors.ValidationError{Field: "date", Item: -1, Err: domainErrors.ErrEmptyDate}
	}
	if len(draft.Items) == 0 {
		return model.Order{}, &domainErrors.ValidationError{Item: -1, Err: domainErrors.ErrNoItems}
	}

	items := make([]model.OrderItem, 0, len(draft.Items))
	for i, d := range draft.Items {
		item, err := buildItem(i, d, catalog)
		if err != nil {
			return model.Order{}, err
		}
		items = append(items, item)
	}

	total := ComputeTotal(items)
	if !storable(total) {
		return model.Order{}, &domainErrors.ValidationError{Item: -1, Err: domainErrors.ErrInvalidNumbers}
	}

	return model.Order{
		CustomerName: name,
		Date:         date,
		Items:        items,
		TotalPrice:   total,
	}, nil
}

func buildItem(index int, d model.ItemDraft, catalog *model.Catalog) (model.OrderItem, error) {
	invalid := func(field string, err error) error {
		return &domainErrors.ValidationError{Field: field, Item: index, Err: err}
	}

	productName := strings.TrimSpace(d.Product)
	if productName == "" || productName == model.ProductPlaceholder {
		return model.OrderItem{}, invalid("product", domainErrors.ErrProductNotSelected)
	}
	product, ok := catalog.Lookup(productName)
	if !ok {
		return model.OrderItem{}, invalid("product", domainErrors.ErrUnknownProduct)
	}

	quantityText := strings.TrimSpace(d.Quantity)
	if quantityText == "" {
		return model.OrderItem{}, invalid("quantity", domainErrors.ErrMissingQuantity)
	}
	quantity, err := strconv.Atoi(quantityText)
	if err != nil {
		return model.OrderItem{}, invalid("quantity", domainErrors.ErrInvalidNumbers)
	}

	unitPrice := product.UnitPrice
	if priceText := strings.TrimSpace(d.UnitPrice); priceText != "" {
		unitPrice, err = decimal.NewFromString(priceText)
		if err != nil {
			return model.OrderItem{}, invalid("unitPrice", domainErrors.ErrInvalidNumbers)
		}
	}

	if quantity <= 0 {
		return model.OrderItem{}, invalid("quantity", domainErrors.ErrInvalidQuantity)
	}
	if unitPrice.IsNegative() || !storable(unitPrice) {
		return model.OrderItem{}, invalid("unitPrice", domainErrors.ErrInvalidNumbers)
	}

	item := model.OrderItem{ProductName: product.Name, Quantity: quantity, UnitPrice: unitPrice}
	if !storable(item.LineTotal()) {
		return model.OrderItem{}, invalid("quantity", domainErrors.ErrInvalidNumbers)
	}
	return item, nil
}

// storable reports whether v survives conversion to the float64 kept in documents.
func storable(v decimal.Decimal) bool {
	f := v.InexactFloat64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
