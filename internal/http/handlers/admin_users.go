package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// AdminUsersHandler serves the user management table.
type AdminUsersHandler struct {
	Flash *flash.Codec
}

func NewAdminUsersHandler(flashCodec *flash.Codec) *AdminUsersHandler {
	return &AdminUsersHandler{Flash: flashCodec}
}

func (h *AdminUsersHandler) List(c *gin.Context) {
	sc := scope(c)

	page := view.AdminUsersPage{Flash: middleware.GetFlash(c)}
	if err := sc.Admin.RefreshUsers(c.Request.Context()); err != nil {
		page.AlertError = "Could not load users. Please try again."
		page.Retry = true
		render.Page(c, http.StatusBadGateway, page)
		return
	}
	// order counts come from the cached admin orders
	_ = sc.Admin.RefreshOrders(c.Request.Context())

	users := sc.Admin.Users()
	rows := make([]view.AdminUserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, view.AdminUserRow{
			ID:         u.ID,
			Username:   u.Username,
			Email:      u.Email,
			Role:       u.Role,
			OrderCount: len(sc.Admin.OrdersForUser(u.ID)),
		})
	}
	page.Users = rows

	render.Page(c, http.StatusOK, page)
}

func (h *AdminUsersHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashError, "Unknown user.")
		return
	}

	if u, _ := middleware.CurrentUser(c); u.ID == id {
		render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashWarning, "You cannot delete your own account.")
		return
	}

	if err := scope(c).Admin.DeleteUser(c.Request.Context(), id); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashError, "Could not delete user.")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashSuccess, "User deleted.")
}
