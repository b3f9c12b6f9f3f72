package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/internal/modules/catalog"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

const adminPageSize = 10

// maxImageSize caps product image uploads at 5 MiB.
const maxImageSize = 5 << 20

// AdminProductsHandler serves the product management table and its CRUD
// actions, including multipart image uploads.
type AdminProductsHandler struct {
	Flash *flash.Codec
}

func NewAdminProductsHandler(flashCodec *flash.Codec) *AdminProductsHandler {
	return &AdminProductsHandler{Flash: flashCodec}
}

func (h *AdminProductsHandler) List(c *gin.Context) {
	sc := scope(c)

	page := view.AdminProductsPage{
		Search: strings.TrimSpace(c.Query("q")),
		Flash:  middleware.GetFlash(c),
	}
	if err := sc.Admin.RefreshProducts(c.Request.Context()); err != nil {
		page.AlertError = "Could not load products. Please try again."
		page.Retry = true
		render.Page(c, http.StatusBadGateway, page)
		return
	}

	pageNum, _ := strconv.Atoi(c.Query("page"))
	res := catalog.Apply(sc.Admin.Products(), catalog.Query{
		Search:   page.Search,
		Category: catalog.CategoryAll,
		Sort:     catalog.SortDefault,
		Page:     pageNum,
		PageSize: adminPageSize,
	})

	rows := make([]view.AdminProductRow, 0, len(res.Items))
	for _, p := range res.Items {
		rows = append(rows, view.AdminProductRow{
			ID:       p.ID,
			Name:     p.Name,
			Price:    view.Money(p.Price),
			Category: p.Category,
			Image:    p.Image,
		})
	}
	page.Products = rows
	page.Page = res.Page
	page.TotalPages = res.TotalPages

	render.Page(c, http.StatusOK, page)
}

func (h *AdminProductsHandler) Create(c *gin.Context) {
	in, err := h.bindProduct(c)
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashError, err.Error())
		return
	}

	if err := scope(c).Admin.CreateProduct(c.Request.Context(), in); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashError, err.Error())
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashSuccess, "Product created.")
}

func (h *AdminProductsHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashError, "Unknown product.")
		return
	}

	in, err := h.bindProduct(c)
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashError, err.Error())
		return
	}
	if in.Image == "" {
		// keep the current image when no new file was uploaded
		in.Image = strings.TrimSpace(c.PostForm("current_image"))
	}

	if err := scope(c).Admin.UpdateProduct(c.Request.Context(), id, in); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashError, err.Error())
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashSuccess, "Product updated.")
}

func (h *AdminProductsHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashError, "Unknown product.")
		return
	}

	if err := scope(c).Admin.DeleteProduct(c.Request.Context(), id); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashError, "Could not delete product.")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashSuccess, "Product deleted.")
}

// bindProduct reads the product form fields and, when present, stores the
// uploaded image to get its public URL.
func (h *AdminProductsHandler) bindProduct(c *gin.Context) (api.ProductInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("price")))
	if err != nil {
		price = decimal.Zero
	}

	in := api.ProductInput{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       price,
		Category:    strings.TrimSpace(c.PostForm("category")),
	}

	file, err := c.FormFile("image")
	if err != nil {
		// no file field is fine, the image stays as-is
		return in, nil
	}
	if file.Size > maxImageSize {
		return in, errInvalidImage
	}

	f, err := file.Open()
	if err != nil {
		return in, errInvalidImage
	}
	defer f.Close()

	url, err := scope(c).Admin.UploadImage(
		c.Request.Context(), f, file.Filename, file.Header.Get("Content-Type"), file.Size,
	)
	if err != nil {
		return in, errImageUpload
	}
	in.Image = url
	return in, nil
}
