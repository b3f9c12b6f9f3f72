package view

// CheckoutForm echoes the shipping form state back to the client.
type CheckoutForm struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Payment string `json:"payment"`
}

type CheckoutPage struct {
	Form    CheckoutForm      `json:"form"`
	Errors  map[string]string `json:"errors,omitempty"`
	Items   []CartItem        `json:"items"`
	Total   string            `json:"total"`
	Flash   *Flash            `json:"flash,omitempty"`
	Payment []string          `json:"payment_methods"`

	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}
