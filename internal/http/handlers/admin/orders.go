package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/shared/apperr"
	"remeralab.com/app/internal/shopapi"
)

var orderStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"shipped":   true,
	"delivered": true,
	"cancelled": true,
}

var paymentStatuses = map[string]bool{
	"pending": true,
	"paid":    true,
	"failed":  true,
}

type OrdersHandler struct {
	API *shopapi.Client
}

func NewOrdersHandler(api *shopapi.Client) *OrdersHandler {
	return &OrdersHandler{API: api}
}

// List handles GET /admin/orders with an optional ?status filter.
func (h *OrdersHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !orderStatuses[status] {
		middleware.Fail(c, apperr.InvalidErr("Unknown order status.", nil))
		return
	}

	orders, err := h.API.ListOrders(c.Request.Context(), middleware.APIToken(c), status)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"orders": orders, "status": status})
}

// Detail handles GET /admin/orders/:id.
func (h *OrdersHandler) Detail(c *gin.Context) {
	o, err := h.API.GetOrder(c.Request.Context(), middleware.APIToken(c), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"order": o})
}

type confirmForm struct {
	AdminNotes string `json:"admin_notes" binding:"max=1000"`
}

// Confirm handles PUT /admin/orders/:id/confirm.
func (h *OrdersHandler) Confirm(c *gin.Context) {
	var form confirmForm
	_ = c.ShouldBindJSON(&form)

	if err := h.API.ConfirmOrder(c.Request.Context(), middleware.APIToken(c), c.Param("id"), form.AdminNotes); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

type statusForm struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /admin/orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var form statusForm
	if err := c.ShouldBindJSON(&form); err != nil || !orderStatuses[form.Status] {
		middleware.Fail(c, apperr.InvalidErr("Unknown order status.", nil))
		return
	}

	if err := h.API.UpdateOrderStatus(c.Request.Context(), middleware.APIToken(c), c.Param("id"), form.Status); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

type paymentForm struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// UpdatePayment handles PUT /admin/orders/:id/payment.
func (h *OrdersHandler) UpdatePayment(c *gin.Context) {
	var form paymentForm
	if err := c.ShouldBindJSON(&form); err != nil || !paymentStatuses[form.PaymentStatus] {
		middleware.Fail(c, apperr.InvalidErr("Unknown payment status.", nil))
		return
	}

	if err := h.API.UpdateOrderPayment(c.Request.Context(), middleware.APIToken(c), c.Param("id"), form.PaymentStatus); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

// Dashboard handles GET /admin: quick counts for the landing view.
func (h *OrdersHandler) Dashboard(c *gin.Context) {
	token := middleware.APIToken(c)

	pending, err := h.API.ListOrders(c.Request.Context(), token, "pending")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	delivered, err := h.API.ListOrders(c.Request.Context(), token, "delivered")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	products, err := h.API.ListProducts(c.Request.Context(), token, shopapi.ProductFilter{Admin: true})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var revenue int64
	for _, o := range delivered {
		revenue += o.TotalCents
	}
	active := 0
	for _, p := range products {
		if p.Active {
			active++
		}
	}

	render.Page(c, http.StatusOK, gin.H{
		"pending_orders":   len(pending),
		"delivered_orders": len(delivered),
		"revenue_cents":    revenue,
		"total_products":   len(products),
		"active_products":  active,
	})
}
