package dto

import "github.com/polkiloo/sweetorders/internal/domain/model"

// ProductResponse is a catalog entry.
type ProductResponse struct {
	Name      string `json:"name"`
	UnitPrice Money  `json:"unitPrice"`
}

// CatalogResponse describes the selectable products and filter placeholders.
type CatalogResponse struct {
	ProductPlaceholder string            `json:"productPlaceholder"`
	DatePlaceholder    string            `json:"datePlaceholder"`
	DateFormat         string            `json:"dateFormat"`
	Products           []ProductResponse `json:"products"`
}

// NewCatalogResponse maps the catalog in display order.
func NewCatalogResponse(catalog *model.Catalog) CatalogResponse {
	products := catalog.Products()
	resp := CatalogResponse{
		ProductPlaceholder: model.ProductPlaceholder,
		DatePlaceholder:    model.DatePlaceholder,
		DateFormat:         model.DateFormat,
		Products:           make([]ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, ProductResponse{Name: p.Name, UnitPrice: Money(p.UnitPrice)})
	}
	return resp
}
