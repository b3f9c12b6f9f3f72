package view

// ProductCard is one tile in the catalog grid.
type ProductCard struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	InWishlist  bool   `json:"in_wishlist"`
}

// ProductsPage carries the catalog grid plus the control state that
// produced it, so the client can re-submit the same view.
type ProductsPage struct {
	Title      string        `json:"title"`
	Search     string        `json:"search"`
	Category   string        `json:"category"`
	SortOrder  string        `json:"sort_order"`
	Categories []string      `json:"categories"`
	Products   []ProductCard `json:"products"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
	CartCount  int           `json:"cart_count"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}
