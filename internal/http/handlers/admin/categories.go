package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/shared/apperr"
	"remeralab.com/app/internal/shopapi"
)

type CategoriesHandler struct {
	API *shopapi.Client
}

func NewCategoriesHandler(api *shopapi.Client) *CategoriesHandler {
	return &CategoriesHandler{API: api}
}

// List handles GET /admin/categories: flat listing, inactive included.
func (h *CategoriesHandler) List(c *gin.Context) {
	items, err := h.API.ListCategories(c.Request.Context(), middleware.APIToken(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"categories": items})
}

type categoryForm struct {
	Name   string `json:"name" binding:"required,min=2,max=80"`
	Parent string `json:"parent" binding:"required,min=2,max=80"`
	Active bool   `json:"active"`
}

// Create handles POST /admin/categories.
func (h *CategoriesHandler) Create(c *gin.Context) {
	var form categoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please check the category fields.", nil))
		return
	}

	cat, err := h.API.CreateCategory(c.Request.Context(), middleware.APIToken(c), shopapi.CategoryInput{
		Name:   form.Name,
		Parent: form.Parent,
		Active: form.Active,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

// Update handles PUT /admin/categories/:id with a partial patch.
func (h *CategoriesHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid category patch.", nil))
		return
	}

	if err := h.API.UpdateCategory(c.Request.Context(), middleware.APIToken(c), c.Param("id"), patch); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

// Delete handles DELETE /admin/categories/:id.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	if err := h.API.DeleteCategory(c.Request.Context(), middleware.APIToken(c), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

// UploadImage handles POST /admin/categories/:id/image.
func (h *CategoriesHandler) UploadImage(c *gin.Context) {
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

	if err := h.API.UploadCategoryImage(c.Request.Context(), middleware.APIToken(c), c.Param("id"), fh.Filename, f); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}

// DeleteImage handles DELETE /admin/categories/:id/image.
func (h *CategoriesHandler) DeleteImage(c *gin.Context) {
	if err := h.API.DeleteCategoryImage(c.Request.Context(), middleware.APIToken(c), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, nil)
}
