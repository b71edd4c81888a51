package model

// ItemDraft holds one order line exactly as entered by staff.
type ItemDraft struct {
	Product   string
	Quantity  string
	UnitPrice string
}

// OrderDraft is raw order input prior to validation.
type OrderDraft struct {
	CustomerName string
	Date         string
	Items        []ItemDraft
}
