package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// ComputeTotal sums quantity × unit price over items. Items are assumed validated.
func ComputeTotal(items []model.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Filter returns orders matching both criteria of f, preserving input order.
// An absent criterion passes every order.
func Filter(orders []model.Order, f model.OrderFilter) []model.Order {
	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if f.Product != nil && !o.HasProduct(*f.Product) {
			continue
		}
		if f.Date != nil && o.Date != *f.Date {
			continue
		}
		result = append(result, o)
	}
	return result
}

// Summarize computes the grand total from stored order totals and per-product
// subtotals from line items. Products appear in order of first sale.
func Summarize(orders []model.Order) model.Summary {
	summary := model.Summary{GrandTotal: decimal.Zero, PerProduct: []model.ProductTotal{}}
	index := make(map[string]int)
	for _, o := range orders {
		summary.GrandTotal = summary.GrandTotal.Add(o.TotalPrice)
		for _, item := range o.Items {
			i, seen := index[item.ProductName]
			if !seen {
				i = len(summary.PerProduct)
				index[item.ProductName] = i
				summary.PerProduct = append(summary.PerProduct, model.ProductTotal{Product: item.ProductName, Total: decimal.Zero})
			}
			summary.PerProduct[i].Total = summary.PerProduct[i].Total.Add(item.LineTotal())
		}
	}
	return summary
}

// PendingDeliveries returns orders still awaiting delivery confirmation.
func PendingDeliveries(orders []model.Order) []model.Order {
	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.CanConfirmDelivery() {
			result = append(result, o)
		}
	}
	return result
}
