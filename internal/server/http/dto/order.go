package dto

import "github.com/polkiloo/sweetorders/internal/domain/model"

// ItemRequest is one order line as typed by the user.
type ItemRequest struct {
	Product   string `json:"product"`
	Quantity  Text   `json:"quantity"`
	UnitPrice Text   `json:"unitPrice"`
}

// OrderRequest is the body of POST /api/orders.
type OrderRequest struct {
	CustomerName string        `json:"customerName"`
	Date         string        `json:"date"`
	Items        []ItemRequest `json:"items"`
}

// ItemResponse is a stored order line.
type ItemResponse struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unitPrice"`
	LineTotal   Money  `json:"lineTotal"`
}

// OrderResponse is an order as shown to the client.
type OrderResponse struct {
	ID                 string         `json:"id"`
	CustomerName       string         `json:"customerName"`
	Date               string         `json:"date"`
	Items              []ItemResponse `json:"items"`
	TotalPrice         Money          `json:"totalPrice"`
	Delivered          bool           `json:"delivered"`
	CanConfirmDelivery bool           `json:"canConfirmDelivery"`
}

// Draft converts the request to raw input for validation.
func (r OrderRequest) Draft() model.OrderDraft {
	draft := model.OrderDraft{
		CustomerName: r.CustomerName,
		Date:         r.Date,
		Items:        make([]model.ItemDraft, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		draft.Items = append(draft.Items, model.ItemDraft{
			Product:   item.Product,
			Quantity:  string(item.Quantity),
			UnitPrice: string(item.UnitPrice),
		})
	}
	return draft
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(order model.Order) OrderResponse {
	resp := OrderResponse{
		ID:                 order.ID,
		CustomerName:       order.CustomerName,
		Date:               order.Date,
		Items:              make([]ItemResponse, 0, len(order.Items)),
		TotalPrice:         Money(order.TotalPrice),
		Delivered:          order.Delivered,
		CanConfirmDelivery: order.CanConfirmDelivery(),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   Money(item.UnitPrice),
			LineTotal:   Money(item.LineTotal()),
		})
	}
	return resp
}

// NewOrderList maps orders preserving their order.
func NewOrderList(orders []model.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, NewOrderResponse(o))
	}
	return resp
}
