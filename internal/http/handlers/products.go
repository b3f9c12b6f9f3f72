package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/internal/modules/catalog"
	"github.com/marvakt/ChocoLuxe/internal/modules/wishlist"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// ProductsHandler renders the storefront catalog grid.
type ProductsHandler struct {
	Flash *flash.Codec
}

func NewProductsHandler(flashCodec *flash.Codec) *ProductsHandler {
	return &ProductsHandler{Flash: flashCodec}
}

// List handles GET / and GET /products. Control state lives in the
// session's catalog view, so changing search, category or sort snaps the
// pager back to page 1 even when the request carries a stale page param.
func (h *ProductsHandler) List(c *gin.Context) {
	sc := scope(c)

	cv := sc.Catalog
	cv.SetSearch(c.Query("q"))
	cv.SetCategory(c.Query("category"))
	cv.SetSort(catalog.Sort(c.Query("sort")))
	if p, err := strconv.Atoi(c.Query("page")); err == nil {
		cv.SetPage(p)
	}
	q := cv.Query()

	page := view.ProductsPage{
		Title:     "ChocoLuxe",
		Search:    q.Search,
		Category:  q.Category,
		SortOrder: string(q.Sort),
		CartCount: middleware.GetCartCount(c),
		Flash:     middleware.GetFlash(c),
	}

	products, err := sc.API.Products(c.Request.Context())
	if err != nil {
		page.AlertError = "Could not load products. Please try again."
		page.Retry = true
		page.Products = []view.ProductCard{}
		render.Page(c, http.StatusBadGateway, page)
		return
	}

	res := catalog.Apply(products, q)
	page.Categories = catalog.Categories(products)
	page.Page = res.Page
	page.TotalPages = res.TotalPages
	page.Total = res.Total
	page.Products = productCards(res.Items, sc.Wishlist)

	render.Page(c, http.StatusOK, page)
}

func productCards(products []api.Product, wl *wishlist.Store) []view.ProductCard {
	cards := make([]view.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, view.ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       view.Money(p.Price),
			Image:       p.Image,
			Category:    p.Category,
			InWishlist:  wl.Has(p.ID),
		})
	}
	return cards
}
