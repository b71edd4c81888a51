package model

import "github.com/shopspring/decimal"

const (
	// ProductPlaceholder is the "no selection" entry shown before the products.
	ProductPlaceholder = "Select Product"
	// DatePlaceholder is shown by clients while no date filter is chosen.
	DatePlaceholder = "Select Date"
	// DateFormat is the textual date layout used by orders (dd/mm/yyyy).
	DateFormat = "dd/mm/yyyy"
	// DateLayout is DateFormat expressed as a Go time layout.
	DateLayout = "02/01/2006"
	// OrdersCollection names the collection/table holding order documents.
	OrdersCollection = "orders"
)

// Product is a sellable item with its canonical unit price.
type Product struct {
	Name      string
	UnitPrice decimal.Decimal
}

// Catalog is the fixed, ordered set of products.
type Catalog struct {
	products []Product
	byName   map[string]Product
}

// NewCatalog builds a catalog preserving the given display order.
func NewCatalog(products ...Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byName:   make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byName[p.Name]; dup {
			continue
		}
		c.products = append(c.products, p)
		c.byName[p.Name] = p
	}
	return c
}

// DefaultCatalog returns the shop's product list.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Product{Name: "Bundi", UnitPrice: decimal.RequireFromString("400.00")},
		Product{Name: "Khaja", UnitPrice: decimal.RequireFromString("400.00")},
		Product{Name: "Mohanthad", UnitPrice: decimal.RequireFromString("450.00")},
		Product{Name: "Champakali Ganthiya", UnitPrice: decimal.RequireFromString("250.00")},
		Product{Name: "Mathadi", UnitPrice: decimal.RequireFromString("350.00")},
	)
}

// Products returns products in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup finds product by name.
func (c *Catalog) Lookup(name string) (Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Names returns the selection list: placeholder first, then products.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.products)+1)
	names = append(names, ProductPlaceholder)
	for _, p := range c.products {
		names = append(names, p.Name)
	}
	return names
}
