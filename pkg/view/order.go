package view

// OrderLine is one item within a placed order, priced at purchase time.
type OrderLine struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type OrderRow struct {
	ID              int64       `json:"id"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	ShippingAddress string      `json:"shipping_address"`
	Total           string      `json:"total"`
	CreatedAt       string      `json:"created_at"`
	Items           []OrderLine `json:"items"`
}

type OrdersPage struct {
	Orders []OrderRow `json:"orders"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}
