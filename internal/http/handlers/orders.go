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

// OrdersHandler serves the customer's order history.
type OrdersHandler struct {
	Flash *flash.Codec
}

func NewOrdersHandler(flashCodec *flash.Codec) *OrdersHandler {
	return &OrdersHandler{Flash: flashCodec}
}

func (h *OrdersHandler) List(c *gin.Context) {
	page := view.OrdersPage{Flash: middleware.GetFlash(c)}

	orders, err := scope(c).Orders.History(c.Request.Context())
	if err != nil {
		page.AlertError = "Could not load your orders. Please try again."
		page.Retry = true
		page.Orders = []view.OrderRow{}
		render.Page(c, http.StatusBadGateway, page)
		return
	}

	rows := make([]view.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow(o))
	}
	page.Orders = rows

	render.Page(c, http.StatusOK, page)
}

func orderRow(o api.Order) view.OrderRow {
	items := make([]view.OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, view.OrderLine{
			Name:      it.Product.Name,
			Image:     it.Product.Image,
			UnitPrice: view.Money(it.Price),
			Quantity:  it.Quantity,
			LineTotal: view.Money(it.Price.Mul(decimalFromInt(it.Quantity))),
		})
	}
	return view.OrderRow{
		ID:              o.ID,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		Total:           view.Money(o.Total),
		CreatedAt:       view.Timestamp(o.CreatedAt),
		Items:           items,
	}
}
