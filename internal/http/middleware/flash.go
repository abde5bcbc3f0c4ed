package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/pkg/view"
)

const ctxKeyFlash = "flash"

// Flash pops a pending flash cookie into the request context so page-load
// handlers can include it in their JSON payload.
func Flash(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := c.Cookie(codec.CookieName); err == nil && v != "" {
			if f, err := codec.Decode(v); err == nil {
				c.Set(ctxKeyFlash, f)
			}
			// One-shot: clear regardless of validity.
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(codec.CookieName, "", -1, "/", "", codec.Secure, true)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) *view.Flash {
	if v, ok := c.Get(ctxKeyFlash); ok {
		if f, ok := v.(*view.Flash); ok {
			return f
		}
	}
	return nil
}

func SetFlashCookie(c *gin.Context, codec *flash.Codec, f view.Flash) {
	val, err := codec.Encode(f)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(codec.CookieName, val, codec.CookieMaxAge(), "/", "", codec.Secure, true)
}
