package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/marvakt/ChocoLuxe/internal/http/appscope"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
)

func scope(c *gin.Context) *appscope.Scope {
	return middleware.GetScope(c)
}

// normalizeReturnTo keeps post-login redirects on this site. Anything with
// a scheme or a protocol-relative prefix falls back to the storefront.
func normalizeReturnTo(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	if containsScheme(raw) {
		return "/"
	}
	return raw
}

func containsScheme(s string) bool {
	i := strings.IndexAny(s, ":/?#")
	return i >= 0 && s[i] == ':'
}

func intParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

func intPostForm(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.PostForm(name)), 10, 64)
	return id, err == nil && id > 0
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

var (
	errInvalidImage = errors.New("image is missing, unreadable or too large")
	errImageUpload  = errors.New("image upload failed")
)
