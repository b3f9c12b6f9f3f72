package view

// CartItem is one rendered cart line.
type CartItem struct {
	LineID    int64  `json:"line_id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartPage struct {
	Items    []CartItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal string     `json:"subtotal"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}

// WishlistItem is one rendered wishlist entry.
type WishlistItem struct {
	LineID    int64  `json:"line_id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     string `json:"price"`
}

type WishlistPage struct {
	Items []WishlistItem `json:"items"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}
