package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/internal/modules/cart"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// CartHandler serves the cart page and its mutations.
type CartHandler struct {
	Flash *flash.Codec
}

func NewCartHandler(flashCodec *flash.Codec) *CartHandler {
	return &CartHandler{Flash: flashCodec}
}

func (h *CartHandler) Get(c *gin.Context) {
	sc := scope(c)

	page := view.CartPage{Flash: middleware.GetFlash(c)}
	if err := sc.Cart.Fetch(c.Request.Context()); err != nil {
		page.AlertError = "Could not load your cart. Please try again."
		page.Retry = true
	}

	lines := sc.Cart.Lines()
	page.Items = cartItems(lines)
	page.Count = sc.Cart.Count()
	page.Subtotal = view.Money(sc.Cart.Subtotal())

	render.Page(c, http.StatusOK, page)
}

func (h *CartHandler) Add(c *gin.Context) {
	productID, ok := intPostForm(c, "product_id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Unknown product.")
		return
	}

	err := scope(c).Cart.Add(c.Request.Context(), productID)
	switch {
	case err == nil:
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
	case errors.Is(err, cart.ErrLoginRequired):
		render.RedirectWithFlash(c, h.Flash, "/login", view.FlashWarning, "Please login to use the cart.")
	case errors.Is(err, cart.ErrAlreadyInCart):
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashInfo, "That item is already in your cart.")
	default:
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Could not add to cart.")
	}
}

func (h *CartHandler) Update(c *gin.Context) {
	productID, ok := intPostForm(c, "product_id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Unknown product.")
		return
	}
	qty, err := strconv.Atoi(strings.TrimSpace(c.PostForm("quantity")))
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Invalid quantity.")
		return
	}

	switch err := scope(c).Cart.UpdateQty(c.Request.Context(), productID, qty); {
	case err == nil:
		c.Redirect(http.StatusFound, "/cart")
	case errors.Is(err, cart.ErrQtyTooLow):
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Quantity must be at least 1.")
	default:
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not update quantity.")
	}
}

func (h *CartHandler) Remove(c *gin.Context) {
	productID, ok := intPostForm(c, "product_id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Unknown product.")
		return
	}

	if err := scope(c).Cart.Remove(c.Request.Context(), productID); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not remove item.")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Removed from cart.")
}

func cartItems(lines []api.CartLine) []view.CartItem {
	items := make([]view.CartItem, 0, len(lines))
	for _, l := range lines {
		lineTotal := l.Product.Price.Mul(decimalFromInt(l.Quantity))
		items = append(items, view.CartItem{
			LineID:    l.ID,
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Image:     l.Product.Image,
			UnitPrice: view.Money(l.Product.Price),
			Quantity:  l.Quantity,
			LineTotal: view.Money(lineTotal),
		})
	}
	return items
}
