package middleware

import (
	"github.com/gin-gonic/gin"
)

const cartCountKey = "cart_count"

// CartCount exposes the session's cart badge count to every handler.
func CartCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if sc := GetScope(c); sc != nil {
			n = sc.Cart.Count()
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
