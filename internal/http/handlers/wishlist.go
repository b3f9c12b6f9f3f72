package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/internal/modules/wishlist"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// WishlistHandler serves the wishlist page and the toggle action.
type WishlistHandler struct {
	Flash *flash.Codec
}

func NewWishlistHandler(flashCodec *flash.Codec) *WishlistHandler {
	return &WishlistHandler{Flash: flashCodec}
}

func (h *WishlistHandler) Get(c *gin.Context) {
	sc := scope(c)

	page := view.WishlistPage{Flash: middleware.GetFlash(c)}
	if err := sc.Wishlist.Fetch(c.Request.Context()); err != nil {
		page.AlertError = "Could not load your wishlist. Please try again."
		page.Retry = true
	}

	lines := sc.Wishlist.Lines()
	items := make([]view.WishlistItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, view.WishlistItem{
			LineID:    l.ID,
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Image:     l.Product.Image,
			Price:     view.Money(l.Product.Price),
		})
	}
	page.Items = items

	render.Page(c, http.StatusOK, page)
}

func (h *WishlistHandler) Toggle(c *gin.Context) {
	productID, ok := intPostForm(c, "product_id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Unknown product.")
		return
	}

	back := normalizeReturnTo(c.PostForm("return_to"))
	status, err := scope(c).Wishlist.Toggle(c.Request.Context(), productID)
	switch {
	case errors.Is(err, wishlist.ErrLoginRequired):
		render.RedirectWithFlash(c, h.Flash, "/login", view.FlashWarning, "Please login to use the wishlist.")
		return
	case err != nil:
		render.RedirectWithFlash(c, h.Flash, back, view.FlashError, "Could not update wishlist.")
		return
	}

	msg := "Added to wishlist."
	if status == api.ToggleRemoved {
		msg = "Removed from wishlist."
	}
	render.RedirectWithFlash(c, h.Flash, back, view.FlashSuccess, msg)
}
