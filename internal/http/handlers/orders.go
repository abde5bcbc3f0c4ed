package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/modules/orders"
	"remeralab.com/app/pkg/view"
)

type OrdersHandler struct {
	Flash  *flash.Codec
	Orders *orders.Service
}

func NewOrdersHandler(fl *flash.Codec, svc *orders.Service) *OrdersHandler {
	return &OrdersHandler{Flash: fl, Orders: svc}
}

// List handles GET /orders: the signed-in user's order history.
func (h *OrdersHandler) List(c *gin.Context) {
	history, err := h.Orders.History(c.Request.Context(), middleware.APIToken(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"orders": history})
}

// Detail handles GET /orders/:id.
func (h *OrdersHandler) Detail(c *gin.Context) {
	detail, err := h.Orders.Detail(c.Request.Context(), middleware.APIToken(c), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"order": detail})
}

// Cancel handles POST /orders/:id/cancel. Only pending orders can be
// cancelled; the shop API enforces that.
func (h *OrdersHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.Orders.Cancel(c.Request.Context(), middleware.APIToken(c), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/orders/"+id, view.FlashSuccess, "Order cancelled.")
}
