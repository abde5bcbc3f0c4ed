package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/pkg/view"
)

// Page wraps a page payload with the ambient bits every page needs: the
// pending flash (if any), the cart badge count and the signed-in user.
func Page(c *gin.Context, status int, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if f := middleware.GetFlash(c); f != nil {
		data["flash"] = f
	}
	data["cart_count"] = middleware.GetCartCount(c)
	if u, ok := middleware.CurrentUser(c); ok {
		data["user"] = gin.H{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role}
	}
	c.JSON(status, data)
}

// OK is the action-response shape: a result the client applies directly.
func OK(c *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["ok"] = true
	c.JSON(http.StatusOK, data)
}

// RedirectWithFlash sets a one-shot notice and tells the client where to
// navigate next.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"redirect": location,
	})
}
