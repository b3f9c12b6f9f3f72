package view

// AdminDashboardPage mirrors the server aggregates plus the locally
// derived recent-orders table and daily sales series.
type AdminDashboardPage struct {
	TotalRevenue  string         `json:"total_revenue"`
	TotalOrders   int            `json:"total_orders"`
	TotalUsers    int            `json:"total_users"`
	TotalProducts int            `json:"total_products"`
	OrderStatus   map[string]int `json:"order_status"`

	RecentOrders []AdminOrderRow `json:"recent_orders"`
	SalesByDay   []SalesPoint    `json:"sales_by_day"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}

type SalesPoint struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

type AdminOrderRow struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	Total         string `json:"total"`
	CreatedAt     string `json:"created_at"`
	ItemCount     int    `json:"item_count"`
}

type AdminOrdersPage struct {
	Orders     []AdminOrderRow `json:"orders"`
	Status     string          `json:"status"` // active filter, "" = all
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`

	Statuses []string `json:"statuses"`
	Payments []string `json:"payments"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}

type AdminProductRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

type AdminProductsPage struct {
	Products   []AdminProductRow `json:"products"`
	Search     string            `json:"search"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`

	Errors map[string]string `json:"errors,omitempty"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}

type AdminUserRow struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	OrderCount int    `json:"order_count"`
}

type AdminUsersPage struct {
	Users []AdminUserRow `json:"users"`

	Flash      *Flash `json:"flash,omitempty"`
	AlertError string `json:"alert_error,omitempty"`
	Retry      bool   `json:"retry,omitempty"`
}
