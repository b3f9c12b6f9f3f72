package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/config"
	"github.com/marvakt/ChocoLuxe/internal/http/appscope"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/handlers"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
)

// NewRouter assembles the full middleware chain and route table.
func NewRouter(cfg config.Config, logger *slog.Logger, registry *appscope.Registry) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	flashCodec := flash.NewCodec(cfg.FlashSecret, cfg.FlashCookieName, cfg.SecureCookies)

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.FlashMiddleware(flashCodec),
		middleware.Session(middleware.SessionCfg{
			Registry:   registry,
			CookieName: cfg.SessionCookieName,
			Secure:     cfg.SecureCookies,
			TTL:        cfg.SessionTTL,
		}),
		middleware.CartCount(),
		middleware.ErrorHandler(logger),
	)

	auth := handlers.NewAuthHandler(flashCodec)
	products := handlers.NewProductsHandler(flashCodec)
	cart := handlers.NewCartHandler(flashCodec)
	wishlist := handlers.NewWishlistHandler(flashCodec)
	checkout := handlers.NewCheckoutHandler(flashCodec)
	orders := handlers.NewOrdersHandler(flashCodec)

	// storefront
	r.GET("/", products.List)
	r.GET("/products", products.List)
	r.GET("/login", auth.LoginGet)
	r.POST("/login", auth.LoginPost)
	r.GET("/register", auth.RegisterGet)
	r.POST("/register", auth.RegisterPost)
	r.POST("/logout", auth.LogoutPost)

	// add/toggle stay public so the stores can answer guests with their
	// own login prompt instead of a blanket redirect
	r.POST("/cart/add", cart.Add)
	r.POST("/wishlist/toggle", wishlist.Toggle)

	// signed-in storefront
	user := r.Group("/", middleware.RequireAuth(flashCodec))
	{
		user.GET("/cart", cart.Get)
		user.POST("/cart/update", cart.Update)
		user.POST("/cart/remove", cart.Remove)

		user.GET("/wishlist", wishlist.Get)

		user.GET("/checkout", checkout.Get)
		user.POST("/checkout", checkout.Post)

		user.GET("/orders", orders.List)
	}

	// admin console
	dashboard := handlers.NewAdminDashboardHandler(flashCodec)
	adminProducts := handlers.NewAdminProductsHandler(flashCodec)
	adminOrders := handlers.NewAdminOrdersHandler(flashCodec)
	adminUsers := handlers.NewAdminUsersHandler(flashCodec)

	admin := r.Group("/admin", middleware.RequireAdmin(flashCodec))
	{
		admin.GET("/dashboard", dashboard.Get)

		admin.GET("/products", adminProducts.List)
		admin.POST("/products", adminProducts.Create)
		admin.POST("/products/:id", adminProducts.Update)
		admin.POST("/products/:id/delete", adminProducts.Delete)

		admin.GET("/orders", adminOrders.List)
		admin.POST("/orders/:id", adminOrders.Update)
		admin.POST("/orders/:id/delete", adminOrders.Delete)

		admin.GET("/users", adminUsers.List)
		admin.POST("/users/:id/delete", adminUsers.Delete)
	}

	return r
}
