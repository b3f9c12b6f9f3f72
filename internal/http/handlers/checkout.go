package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/internal/modules/admin"
	"github.com/marvakt/ChocoLuxe/internal/modules/checkout"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// CheckoutHandler serves the shipping form and places orders.
type CheckoutHandler struct {
	Flash *flash.Codec
}

func NewCheckoutHandler(flashCodec *flash.Codec) *CheckoutHandler {
	return &CheckoutHandler{Flash: flashCodec}
}

type checkoutForm struct {
	Name    string `form:"name"`
	Address string `form:"address"`
	Phone   string `form:"phone"`
	Payment string `form:"payment"`
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	sc := scope(c)

	fetchErr := sc.Cart.Fetch(c.Request.Context())
	if fetchErr == nil && sc.Cart.Count() == 0 {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashInfo, "Your cart is empty.")
		return
	}

	lines := sc.Cart.Lines()
	page := view.CheckoutPage{
		Items:   cartItems(lines),
		Total:   view.Money(checkout.Total(lines)),
		Payment: admin.PaymentMethods,
		Flash:   middleware.GetFlash(c),
	}
	if fetchErr != nil {
		// stale cached lines still render, but say so
		page.AlertError = "Could not refresh your cart. Totals may be out of date."
		page.Retry = true
		render.Page(c, http.StatusBadGateway, page)
		return
	}
	render.Page(c, http.StatusOK, page)
}

func (h *CheckoutHandler) Post(c *gin.Context) {
	var form checkoutForm
	_ = c.ShouldBind(&form)

	sc := scope(c)
	details := checkout.Details{
		Name:    form.Name,
		Address: form.Address,
		Phone:   form.Phone,
		Payment: form.Payment,
	}

	if err := sc.Checkout.Validate(details); err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashInfo, "Your cart is empty.")
			return
		}
		lines := sc.Cart.Lines()
		render.Page(c, http.StatusBadRequest, view.CheckoutPage{
			Form:    view.CheckoutForm(form),
			Errors:  map[string]string{fieldFor(err): err.Error()},
			Items:   cartItems(lines),
			Total:   view.Money(checkout.Total(lines)),
			Payment: admin.PaymentMethods,
		})
		return
	}

	if err := sc.Checkout.PlaceOrder(c.Request.Context(), details); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/checkout", view.FlashError, "Could not place your order. Please try again.")
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/orders", view.FlashSuccess, "Order placed. Thank you!")
}

func fieldFor(err error) string {
	switch {
	case errors.Is(err, checkout.ErrMissingName):
		return "name"
	case errors.Is(err, checkout.ErrMissingAddress):
		return "address"
	case errors.Is(err, checkout.ErrMissingPhone):
		return "phone"
	case errors.Is(err, checkout.ErrInvalidPayment):
		return "payment"
	default:
		return "_"
	}
}
