package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/modules/categories"
	"remeralab.com/app/internal/modules/products"
)

type ProductsHandler struct {
	Products   *products.Service
	Categories *categories.Service
}

func NewProductsHandler(p *products.Service, c *categories.Service) *ProductsHandler {
	return &ProductsHandler{Products: p, Categories: c}
}

// Home handles GET / with featured products and the category navigation.
func (h *ProductsHandler) Home(c *gin.Context) {
	featured, err := h.Products.Featured(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	nav, err := h.Categories.Nav(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	render.Page(c, http.StatusOK, gin.H{
		"featured":   featured,
		"categories": nav,
	})
}

// List handles GET /products with optional category/parent/search filters.
func (h *ProductsHandler) List(c *gin.Context) {
	f := products.ListFilter{
		CategoryID:     strings.TrimSpace(c.Query("category")),
		ParentCategory: strings.TrimSpace(c.Query("parent")),
		Search:         strings.TrimSpace(c.Query("search")),
	}

	items, err := h.Products.List(c.Request.Context(), f)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	nav, err := h.Categories.Nav(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	render.Page(c, http.StatusOK, gin.H{
		"products":   items,
		"categories": nav,
		"filter": gin.H{
			"category": f.CategoryID,
			"parent":   f.ParentCategory,
			"search":   f.Search,
		},
	})
}

// Detail handles GET /products/:id.
func (h *ProductsHandler) Detail(c *gin.Context) {
	p, err := h.Products.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"product": p})
}
