package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/cartcookie"
	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/modules/cart"
	"remeralab.com/app/internal/modules/products"
	"remeralab.com/app/internal/shared/apperr"
	"remeralab.com/app/pkg/view"
)

type CartHandler struct {
	Flash    *flash.Codec
	CK       *cartcookie.Codec
	CartSvc  *cart.Service
	Products *products.Service
}

func NewCartHandler(fl *flash.Codec, ck *cartcookie.Codec, svc *cart.Service, prod *products.Service) *CartHandler {
	return &CartHandler{Flash: fl, CK: ck, CartSvc: svc, Products: prod}
}

// Show handles GET /cart. Lines whose product vanished are pruned from the
// cookie so the page is self-healing.
func (h *CartHandler) Show(c *gin.Context) {
	cc, _ := h.CK.Get(c)

	page, err := h.CartSvc.BuildCartPage(c.Request.Context(), cc)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if len(page.RemovedItems) > 0 {
		cart.Prune(cc, page.RemovedItems)
		h.CK.Set(c, cc)
	}

	render.Page(c, http.StatusOK, gin.H{"cart": page})
}

type addToCartForm struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Qty       int    `json:"qty" binding:"omitempty,gte=1,lte=99"`
}

// Add handles POST /cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var form addToCartForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}
	if form.Qty == 0 {
		form.Qty = 1
	}

	ok, err := h.Products.InStock(c.Request.Context(), form.ProductID, form.Size)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if !ok {
		middleware.Fail(c, apperr.ConflictErr("That size is out of stock."))
		return
	}

	cc, _ := h.CK.Get(c)
	cc.AddItem(form.ProductID, form.Size, form.Qty)
	h.CK.Set(c, cc)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
}

type updateCartForm struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Qty       int    `json:"qty" binding:"gte=0,lte=99"`
}

// Update handles POST /cart/items/update; qty 0 removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	var form updateCartForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}

	cc, _ := h.CK.Get(c)
	cc.UpdateQuantity(form.ProductID, form.Size, form.Qty)
	h.CK.Set(c, cc)

	page, err := h.CartSvc.BuildCartPage(c.Request.Context(), cc)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, gin.H{"cart": page})
}

// Remove handles POST /cart/items/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	productID := strings.TrimSpace(c.Query("product_id"))
	size := strings.TrimSpace(c.Query("size"))
	if productID == "" {
		var form updateCartForm
		if err := c.ShouldBindJSON(&form); err == nil {
			productID, size = form.ProductID, form.Size
		}
	}
	if productID == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing product.", nil))
		return
	}

	cc, _ := h.CK.Get(c)
	cc.RemoveItem(productID, size)
	h.CK.Set(c, cc)

	page, err := h.CartSvc.BuildCartPage(c.Request.Context(), cc)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, gin.H{"cart": page})
}
