// mockapi is a small in-memory stand-in for the real catalog backend, for
// local development without the production API. It speaks the same routes
// and shapes but keeps everything in process and trusts any bearer token.
package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

type cartLine struct {
	ID       int64   `json:"id"`
	Product  product `json:"product"`
	Quantity int     `json:"quantity"`
}

type wishLine struct {
	ID      int64   `json:"id"`
	Product product `json:"product"`
}

type orderItem struct {
	ID       int64           `json:"id"`
	Product  product         `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Items           []orderItem     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress string          `json:"shipping_address"`
	PhoneNumber     string          `json:"phone_number"`
	CreatedAt       time.Time       `json:"created_at"`
}

type state struct {
	mu       sync.Mutex
	nextID   int64
	products []product
	cart     []cartLine
	wishlist []wishLine
	orders   []order
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func seed() *state {
	s := &state{nextID: 100}
	s.products = []product{
		{ID: 1, Name: "Dark Truffle Box", Description: "70% single-origin dark truffles", Price: price("499.00"), Category: "Truffles", Image: "/img/dark-truffle.jpg"},
		{ID: 2, Name: "Milk Hazelnut Bar", Description: "Creamy milk chocolate with roasted hazelnuts", Price: price("199.00"), Category: "Bars", Image: "/img/milk-hazelnut.jpg"},
		{ID: 3, Name: "White Raspberry Bar", Description: "White chocolate with freeze-dried raspberry", Price: price("229.00"), Category: "Bars", Image: "/img/white-raspberry.jpg"},
		{ID: 4, Name: "Salted Caramel Pralines", Description: "Soft caramel hearts with sea salt", Price: price("349.00"), Category: "Pralines", Image: "/img/salted-caramel.jpg"},
		{ID: 5, Name: "Orange Peel Dips", Description: "Candied orange peel dipped in dark chocolate", Price: price("279.00"), Category: "Dipped", Image: "/img/orange-peel.jpg"},
		{ID: 6, Name: "Espresso Thins", Description: "Dark chocolate thins with espresso crunch", Price: price("259.00"), Category: "Bars", Image: "/img/espresso-thins.jpg"},
		{ID: 7, Name: "Gift Assortment", Description: "24-piece assorted gift box", Price: price("899.00"), Category: "Gift Boxes", Image: "/img/gift-assortment.jpg"},
		{ID: 8, Name: "Hot Cocoa Bombs", Description: "Melt-in-milk cocoa spheres with marshmallow", Price: price("329.00"), Category: "Cocoa", Image: "/img/cocoa-bombs.jpg"},
		{ID: 9, Name: "Pistachio Dragées", Description: "Roasted pistachios in matcha white chocolate", Price: price("389.00"), Category: "Dragées", Image: "/img/pistachio.jpg"},
	}
	return s
}

func main() {
	s := seed()
	r := gin.Default()

	r.POST("/api/auth/login/", func(c *gin.Context) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.Password == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		role := "user"
		if in.Email == "admin@chocoluxe.test" {
			role = "admin"
		}
		c.JSON(http.StatusOK, gin.H{
			"access":  "mock-access-token",
			"refresh": "mock-refresh-token",
			"user": gin.H{
				"id": 1, "username": "mockuser", "email": in.Email, "role": role,
			},
		})
	})

	r.POST("/api/auth/register/", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"message": "registered"})
	})

	r.POST("/api/auth/token/refresh/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"access": "mock-access-token"})
	})

	r.GET("/api/products/", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"products": s.products})
	})

	r.GET("/api/cart/", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"items": s.cart})
	})

	r.POST("/api/cart/add/", func(c *gin.Context) {
		var in struct {
			ProductID int64 `json:"product_id"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, l := range s.cart {
			if l.Product.ID == in.ProductID {
				c.JSON(http.StatusConflict, gin.H{"error": "already in cart"})
				return
			}
		}
		p, ok := s.findProduct(in.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		s.cart = append(s.cart, cartLine{ID: s.id(), Product: p, Quantity: 1})
		c.JSON(http.StatusCreated, gin.H{"message": "added"})
	})

	r.PATCH("/api/cart/update/", func(c *gin.Context) {
		var in struct {
			ProductID int64 `json:"product_id"`
			Qty       int   `json:"qty"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.Qty < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.cart {
			if s.cart[i].Product.ID == in.ProductID {
				s.cart[i].Quantity = in.Qty
				c.JSON(http.StatusOK, gin.H{"message": "updated"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not in cart"})
	})

	r.POST("/api/cart/remove/", func(c *gin.Context) {
		var in struct {
			ProductID int64 `json:"product_id"`
		}
		_ = c.ShouldBindJSON(&in)
		s.mu.Lock()
		defer s.mu.Unlock()
		kept := s.cart[:0]
		for _, l := range s.cart {
			if l.Product.ID != in.ProductID {
				kept = append(kept, l)
			}
		}
		s.cart = kept
		c.JSON(http.StatusOK, gin.H{"message": "removed"})
	})

	r.GET("/api/wishlist/", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"items": s.wishlist})
	})

	r.POST("/api/wishlist/toggle/", func(c *gin.Context) {
		var in struct {
			ProductID int64 `json:"product_id"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.wishlist {
			if l.Product.ID == in.ProductID {
				s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"status": "removed"})
				return
			}
		}
		p, ok := s.findProduct(in.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		s.wishlist = append(s.wishlist, wishLine{ID: s.id(), Product: p})
		c.JSON(http.StatusOK, gin.H{"status": "added"})
	})

	r.POST("/api/orders/create/", func(c *gin.Context) {
		var in struct {
			ShippingAddress string `json:"shipping_address"`
			PhoneNumber     string `json:"phone_number"`
			PaymentMethod   string `json:"payment_method"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		o := order{
			ID:              s.id(),
			UserID:          1,
			Status:          "pending",
			PaymentMethod:   in.PaymentMethod,
			ShippingAddress: in.ShippingAddress,
			PhoneNumber:     in.PhoneNumber,
			CreatedAt:       time.Now(),
			Total:           decimal.Zero,
		}
		for _, l := range s.cart {
			o.Items = append(o.Items, orderItem{
				ID: s.id(), Product: l.Product, Quantity: l.Quantity, Price: l.Product.Price,
			})
			o.Total = o.Total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		s.orders = append([]order{o}, s.orders...)
		s.cart = nil
		c.JSON(http.StatusCreated, gin.H{"message": "order placed"})
	})

	r.GET("/api/orders/", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"orders": s.orders})
	})

	admin := r.Group("/api/admin")
	{
		admin.GET("/dashboard/", func(c *gin.Context) {
			s.mu.Lock()
			defer s.mu.Unlock()
			revenue := decimal.Zero
			byStatus := map[string]int{}
			for _, o := range s.orders {
				revenue = revenue.Add(o.Total)
				byStatus[o.Status]++
			}
			c.JSON(http.StatusOK, gin.H{
				"totalRevenue":  revenue,
				"totalOrders":   len(s.orders),
				"totalUsers":    2,
				"totalProducts": len(s.products),
				"orderStatus":   byStatus,
			})
		})

		admin.GET("/products/", func(c *gin.Context) {
			s.mu.Lock()
			defer s.mu.Unlock()
			c.JSON(http.StatusOK, gin.H{"products": s.products})
		})

		admin.POST("/products/add/", func(c *gin.Context) {
			var p product
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product"})
				return
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			p.ID = s.id()
			s.products = append(s.products, p)
			c.JSON(http.StatusCreated, gin.H{"message": "created"})
		})

		admin.PUT("/products/:id/", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			var p product
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product"})
				return
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			for i := range s.products {
				if s.products[i].ID == id {
					p.ID = id
					s.products[i] = p
					c.JSON(http.StatusOK, gin.H{"message": "updated"})
					return
				}
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		})

		admin.DELETE("/products/:id/delete/", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			s.mu.Lock()
			defer s.mu.Unlock()
			kept := s.products[:0]
			for _, p := range s.products {
				if p.ID != id {
					kept = append(kept, p)
				}
			}
			s.products = kept
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		})

		admin.GET("/orders/", func(c *gin.Context) {
			s.mu.Lock()
			defer s.mu.Unlock()
			c.JSON(http.StatusOK, gin.H{"orders": s.orders})
		})

		admin.PUT("/orders/:id/", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			var in struct {
				Status        *string `json:"status"`
				PaymentMethod *string `json:"payment_method"`
			}
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update"})
				return
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			for i := range s.orders {
				if s.orders[i].ID == id {
					if in.Status != nil {
						s.orders[i].Status = *in.Status
					}
					if in.PaymentMethod != nil {
						s.orders[i].PaymentMethod = *in.PaymentMethod
					}
					c.JSON(http.StatusOK, gin.H{"message": "updated"})
					return
				}
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		})

		admin.DELETE("/orders/:id/delete/", func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			s.mu.Lock()
			defer s.mu.Unlock()
			kept := s.orders[:0]
			for _, o := range s.orders {
				if o.ID != id {
					kept = append(kept, o)
				}
			}
			s.orders = kept
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		})

		admin.GET("/users/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"users": []gin.H{
				{"id": 1, "username": "mockuser", "email": "user@chocoluxe.test", "role": "user"},
				{"id": 2, "username": "mockadmin", "email": "admin@chocoluxe.test", "role": "admin"},
			}})
		})

		admin.DELETE("/users/:id/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		})
	}

	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = ":9000"
	}
	log.Printf("mockapi listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func (s *state) findProduct(id int64) (product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return product{}, false
}
