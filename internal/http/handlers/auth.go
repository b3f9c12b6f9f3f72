package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/http/render"
	"github.com/marvakt/ChocoLuxe/internal/http/validation"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// AuthHandler serves login, register and logout.
type AuthHandler struct {
	Flash *flash.Codec
}

func NewAuthHandler(flashCodec *flash.Codec) *AuthHandler {
	return &AuthHandler{Flash: flashCodec}
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	ReturnTo string `form:"return_to"`
}

type registerForm struct {
	Username string `form:"username" binding:"required,min=3,max=30"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

func (h *AuthHandler) LoginGet(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render.Page(c, http.StatusOK, view.LoginPage{
		ReturnTo: normalizeReturnTo(c.Query("return_to")),
		Flash:    middleware.GetFlash(c),
	})
}

func (h *AuthHandler) LoginPost(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render.Page(c, http.StatusBadRequest, view.LoginPage{
			Form:   view.LoginForm{Email: form.Email},
			Errors: validation.FromBindError(err, &form),
		})
		return
	}

	sc := scope(c)
	ident := sc.Session.Login(c.Request.Context(), form.Email, form.Password)
	if ident == nil {
		render.Page(c, http.StatusUnauthorized, view.LoginPage{
			Form:      view.LoginForm{Email: form.Email},
			PageError: "Invalid email or password.",
			ReturnTo:  normalizeReturnTo(form.ReturnTo),
		})
		return
	}

	dest := normalizeReturnTo(form.ReturnTo)
	if ident.IsAdmin() && dest == "/" {
		dest = "/admin/dashboard"
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Welcome back, "+ident.Username+".")
}

func (h *AuthHandler) RegisterGet(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render.Page(c, http.StatusOK, view.RegisterPage{Flash: middleware.GetFlash(c)})
}

func (h *AuthHandler) RegisterPost(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render.Page(c, http.StatusBadRequest, view.RegisterPage{
			Form:   view.RegisterForm{Username: form.Username, Email: form.Email},
			Errors: validation.FromBindError(err, &form),
		})
		return
	}

	res := scope(c).Session.Register(c.Request.Context(), api.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if !res.OK {
		page := view.RegisterPage{
			Form: view.RegisterForm{Username: form.Username, Email: form.Email},
		}
		if res.Field != "" {
			page.Errors = map[string]string{res.Field: res.Message}
		} else {
			page.PageError = res.Message
		}
		render.Page(c, http.StatusBadRequest, page)
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/login", view.FlashSuccess, "Account created. Please login.")
}

func (h *AuthHandler) LogoutPost(c *gin.Context) {
	scope(c).Session.Logout(c.Request.Context())
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashInfo, "You have been logged out.")
}
