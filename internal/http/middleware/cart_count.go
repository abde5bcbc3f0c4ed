package middleware

import (
	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/cartcookie"
)

const ctxKeyCartCount = "cart_count"

// CartCount exposes the cart line total on every request so page payloads
// can render the header badge without re-reading the cookie.
func CartCount(codec *cartcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, _ := codec.Get(c)
		c.Set(ctxKeyCartCount, cart.Count())
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	if v, ok := c.Get(ctxKeyCartCount); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}
