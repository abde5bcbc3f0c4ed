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

type ProductsHandler struct {
	API *shopapi.Client
}

func NewProductsHandler(api *shopapi.Client) *ProductsHandler {
	return &ProductsHandler{API: api}
}

// List handles GET /admin/products: the full catalog, inactive included.
func (h *ProductsHandler) List(c *gin.Context) {
	items, err := h.API.ListProducts(c.Request.Context(), middleware.APIToken(c), shopapi.ProductFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Admin:  true,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"products": items})
}

type productForm struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	Description string `json:"description" binding:"max=2000"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	CategoryID  string `json:"category_id" binding:"required"`
	Sizes       []struct {
		Size  string `json:"size" binding:"required"`
		Stock int    `json:"stock" binding:"gte=0"`
	} `json:"sizes" binding:"required,min=1,dive"`
	Active   bool `json:"active"`
	Featured bool `json:"featured"`
}

func (f productForm) input() shopapi.ProductInput {
	sizes := make([]shopapi.SizeStock, 0, len(f.Sizes))
	for _, s := range f.Sizes {
		sizes = append(sizes, shopapi.SizeStock{Size: s.Size, Stock: s.Stock})
	}
	return shopapi.ProductInput{
		Name:        f.Name,
		Description: f.Description,
		PriceCents:  f.PriceCents,
		CategoryID:  f.CategoryID,
		Sizes:       sizes,
		Active:      f.Active,
		Featured:    f.Featured,
	}
}

// Create handles POST /admin/products.
func (h *ProductsHandler) Create(c *gin.Context) {
	var form productForm
	if err := c.ShouldBindJSON(&form); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please check the product fields.", nil))
		return
	}

	p, err := h.API.CreateProduct(c.Request.Context(), middleware.APIToken(c), form.input())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

// Update handles PUT /admin/products/:id. The body is forwarded as a
// partial patch so single-field toggles work.
func (h *ProductsHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product patch.", nil))
		return
	}

	if err := h.API.UpdateProduct(c.Request.Context(), middleware.APIToken(c), c.Param("id"), patch); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

// Delete handles DELETE /admin/products/:id.
func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.API.DeleteProduct(c.Request.Context(), middleware.APIToken(c), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

// UploadImage handles POST /admin/products/:id/images (multipart "image").
func (h *ProductsHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Attach an image file under \"image\".", nil))
		return
	}
	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	if err := h.API.UploadProductImage(c.Request.Context(), middleware.APIToken(c), c.Param("id"), fh.Filename, f); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

// DeleteImage handles DELETE /admin/products/:id/images/:imageID.
func (h *ProductsHandler) DeleteImage(c *gin.Context) {
	err := h.API.DeleteProductImage(c.Request.Context(), middleware.APIToken(c), c.Param("id"), c.Param("imageID"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}
