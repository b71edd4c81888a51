package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// NoSalesText is shown when no order matches the filters.
const NoSalesText = "No sales data"

const currencySymbol = "₹"

// ProductTotalResponse is the revenue of one product.
type ProductTotalResponse struct {
	Product string `json:"product"`
	Total   Money  `json:"total"`
}

// SummaryResponse is the sales summary over the filtered orders.
type SummaryResponse struct {
	GrandTotal     Money                  `json:"grandTotal"`
	GrandTotalText string                 `json:"grandTotalText"`
	Products       []ProductTotalResponse `json:"products"`
	Text           string                 `json:"text"`
}

// NewSummaryResponse maps a summary and renders its display text.
func NewSummaryResponse(summary model.Summary) SummaryResponse {
	resp := SummaryResponse{
		GrandTotal:     Money(summary.GrandTotal),
		GrandTotalText: "Grand Total: " + formatAmount(summary.GrandTotal),
		Products:       make([]ProductTotalResponse, 0, len(summary.PerProduct)),
	}

	lines := make([]string, 0, len(summary.PerProduct))
	for _, pt := range summary.PerProduct {
		resp.Products = append(resp.Products, ProductTotalResponse{Product: pt.Product, Total: Money(pt.Total)})
		lines = append(lines, fmt.Sprintf("%s: %s", pt.Product, formatAmount(pt.Total)))
	}

	if len(lines) == 0 {
		resp.Text = NoSalesText
	} else {
		resp.Text = strings.Join(lines, "\n")
	}
	return resp
}

func formatAmount(d decimal.Decimal) string {
	return currencySymbol + d.StringFixed(2)
}
