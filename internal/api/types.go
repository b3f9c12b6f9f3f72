package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a read-only snapshot from the server. It is never mutated
// client-side; price arrives as a decimal string on the wire.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// CartLine is one product+quantity entry in the cart, keyed by the
// server-assigned line id.
type CartLine struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type WishlistLine struct {
	ID      int64   `json:"id"`
	Product Product `json:"product"`
}

type OrderItem struct {
	ID       int64           `json:"id"`
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress string          `json:"shipping_address"`
	PhoneNumber     string          `json:"phone_number"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Identity is the authenticated user's role-tagged profile.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == "admin" }

type loginResponse struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    Identity `json:"user"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// RegisterInput mirrors the register endpoint's expected payload.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ToggleStatus string

const (
	ToggleAdded   ToggleStatus = "added"
	ToggleRemoved ToggleStatus = "removed"
)

type toggleResponse struct {
	Status ToggleStatus `json:"status"`
}

type CreateOrderInput struct {
	ShippingAddress string `json:"shipping_address"`
	PhoneNumber     string `json:"phone_number"`
	PaymentMethod   string `json:"payment_method"`
}

// AdminUser is the admin-scoped user listing row.
type AdminUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Dashboard carries the admin dashboard aggregates exactly as the server
// reports them.
type Dashboard struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	TotalUsers    int             `json:"totalUsers"`
	TotalProducts int             `json:"totalProducts"`
	OrderStatus   map[string]int  `json:"orderStatus"`
}

// ProductInput is the admin product create/update payload.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// OrderUpdate is the admin partial order update: only status and
// payment method are mutable.
type OrderUpdate struct {
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
}
