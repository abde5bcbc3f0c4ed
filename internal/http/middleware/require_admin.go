package middleware

import (
	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/shared/apperr"
)

// RequireAdmin rejects non-admin sessions with 403. Assumes Session ran
// earlier in the chain.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Sign in to continue."))
			return
		}
		if u.Role != "admin" {
			Fail(c, apperr.ForbiddenErr("Admin access required."))
			return
		}
		c.Next()
	}
}
