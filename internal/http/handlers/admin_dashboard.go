package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// AdminDashboardHandler renders the admin overview page.
type AdminDashboardHandler struct {
	Flash *flash.Codec
}

func NewAdminDashboardHandler(flashCodec *flash.Codec) *AdminDashboardHandler {
	return &AdminDashboardHandler{Flash: flashCodec}
}

func (h *AdminDashboardHandler) Get(c *gin.Context) {
	page := view.AdminDashboardPage{Flash: middleware.GetFlash(c)}

	ov, err := scope(c).Admin.Dashboard(c.Request.Context())
	if err != nil {
		page.AlertError = "Could not load the dashboard. Please try again."
		page.Retry = true
		render.Page(c, http.StatusBadGateway, page)
		return
	}

	page.TotalRevenue = view.Money(ov.TotalRevenue)
	page.TotalOrders = ov.TotalOrders
	page.TotalUsers = ov.TotalUsers
	page.TotalProducts = ov.TotalProducts
	page.OrderStatus = ov.OrderStatus

	page.RecentOrders = make([]view.AdminOrderRow, 0, len(ov.RecentOrders))
	for _, o := range ov.RecentOrders {
		page.RecentOrders = append(page.RecentOrders, adminOrderRow(o))
	}
	page.SalesByDay = make([]view.SalesPoint, 0, len(ov.SalesByDay))
	for _, p := range ov.SalesByDay {
		page.SalesByDay = append(page.SalesByDay, view.SalesPoint{
			Date:  p.Date,
			Total: view.Money(p.Total),
		})
	}

	render.Page(c, http.StatusOK, page)
}

func adminOrderRow(o api.Order) view.AdminOrderRow {
	return view.AdminOrderRow{
		ID:            o.ID,
		UserID:        o.UserID,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Total:         view.Money(o.Total),
		CreatedAt:     view.Timestamp(o.CreatedAt),
		ItemCount:     len(o.Items),
	}
}
