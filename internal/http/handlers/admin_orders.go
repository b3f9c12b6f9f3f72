package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/internal/modules/admin"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// AdminOrdersHandler serves the order management table.
type AdminOrdersHandler struct {
	Flash *flash.Codec
}

func NewAdminOrdersHandler(flashCodec *flash.Codec) *AdminOrdersHandler {
	return &AdminOrdersHandler{Flash: flashCodec}
}

func (h *AdminOrdersHandler) List(c *gin.Context) {
	sc := scope(c)

	page := view.AdminOrdersPage{
		Status:   strings.TrimSpace(c.Query("status")),
		Statuses: admin.OrderStatuses,
		Payments: admin.PaymentMethods,
		Flash:    middleware.GetFlash(c),
	}
	if err := sc.Admin.RefreshOrders(c.Request.Context()); err != nil {
		page.AlertError = "Could not load orders. Please try again."
		page.Retry = true
		render.Page(c, http.StatusBadGateway, page)
		return
	}

	orders := sc.Admin.Orders()
	if page.Status != "" {
		filtered := orders[:0:0]
		for _, o := range orders {
			if o.Status == page.Status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	pageNum, _ := strconv.Atoi(c.Query("page"))
	rows, cur, total := paginateOrders(orders, pageNum, adminPageSize)
	page.Orders = rows
	page.Page = cur
	page.TotalPages = total

	render.Page(c, http.StatusOK, page)
}

func (h *AdminOrdersHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/admin/orders", view.FlashError, "Unknown order.")
		return
	}

	status := strings.TrimSpace(c.PostForm("status"))
	payment := strings.TrimSpace(c.PostForm("payment_method"))
	if err := scope(c).Admin.UpdateOrder(c.Request.Context(), id, status, payment); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/orders", view.FlashError, err.Error())
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/orders", view.FlashSuccess, "Order updated.")
}

func (h *AdminOrdersHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/admin/orders", view.FlashError, "Unknown order.")
		return
	}

	if err := scope(c).Admin.DeleteOrder(c.Request.Context(), id); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/orders", view.FlashError, "Could not delete order.")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/orders", view.FlashSuccess, "Order deleted.")
}

func paginateOrders(orders []api.Order, page, size int) ([]view.AdminOrderRow, int, int) {
	totalPages := (len(orders) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(orders) {
		start = len(orders)
	}
	if end > len(orders) {
		end = len(orders)
	}

	rows := make([]view.AdminOrderRow, 0, end-start)
	for _, o := range orders[start:end] {
		rows = append(rows, adminOrderRow(o))
	}
	return rows, page, totalPages
}
