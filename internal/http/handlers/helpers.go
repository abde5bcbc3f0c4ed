package handlers

import (
	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/validation"
	"remeralab.com/app/internal/shared/apperr"
)

// failValidation maps a bind error onto per-field messages and fails the
// request with 400.
func failValidation(c *gin.Context, err error, dst any) {
	fields := validation.FromBindError(err, dst)
	middleware.Fail(c, apperr.InvalidErr("Please check the highlighted fields.", fields))
}
