package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/cartcookie"
	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/modules/cart"
	"remeralab.com/app/internal/modules/checkout"
	"remeralab.com/app/internal/shared/apperr"
	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/pkg/view"
)

type CheckoutHandler struct {
	Flash    *flash.Codec
	CK       *cartcookie.Codec
	CartSvc  *cart.Service
	Checkout *checkout.Service
}

func NewCheckoutHandler(fl *flash.Codec, ck *cartcookie.Codec, cartSvc *cart.Service, svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Flash: fl, CK: ck, CartSvc: cartSvc, Checkout: svc}
}

// Show handles GET /checkout: the cart summary to confirm before placing.
func (h *CheckoutHandler) Show(c *gin.Context) {
	cc, _ := h.CK.Get(c)
	page, err := h.CartSvc.BuildCartPage(c.Request.Context(), cc)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if page.Count == 0 {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Your cart is empty.")
		return
	}

	render.Page(c, http.StatusOK, gin.H{
		"cart":            page,
		"payment_methods": []string{"efectivo", "transferencia", "tarjeta"},
	})
}

type placeOrderForm struct {
	Street        string `json:"street" binding:"required"`
	City          string `json:"city" binding:"required"`
	Province      string `json:"province" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=efectivo transferencia tarjeta"`
	Notes         string `json:"notes" binding:"omitempty,max=500"`
}

// Place handles POST /checkout. On success the cart cookie is cleared and
// the client is sent to the order detail page.
func (h *CheckoutHandler) Place(c *gin.Context) {
	var form placeOrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}

	cc, _ := h.CK.Get(c)

	order, err := h.Checkout.PlaceOrder(c.Request.Context(), middleware.APIToken(c), cc, checkout.PlaceOrderInput{
		Address: shopapi.Address{
			Street:     form.Street,
			City:       form.City,
			Province:   form.Province,
			PostalCode: form.PostalCode,
		},
		PaymentMethod: form.PaymentMethod,
		Notes:         form.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrCartEmpty):
			middleware.Fail(c, apperr.InvalidErr("Your cart is empty.", nil))
		case errors.Is(err, checkout.ErrBadPayment):
			middleware.Fail(c, apperr.InvalidErr("Unknown payment method.", nil))
		case errors.Is(err, checkout.ErrMissingAddress):
			middleware.Fail(c, apperr.InvalidErr("Shipping address is incomplete.", nil))
		default:
			middleware.Fail(c, err)
		}
		return
	}

	cc.Clear()
	h.CK.Clear(c)

	render.RedirectWithFlash(c, h.Flash, "/orders/"+order.ID, view.FlashSuccess, "Order placed.")
}
