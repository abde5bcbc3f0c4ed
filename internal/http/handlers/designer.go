package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/cartcookie"
	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/modules/designer"
	"remeralab.com/app/internal/shared/apperr"
	"remeralab.com/app/pkg/view"
)

// DesignerHandler is the HTTP surface of the garment design canvas. Each
// scene lives server-side under a generated id; the client sends actions
// and renders the returned scene state.
type DesignerHandler struct {
	Store    *designer.Store
	Packager *designer.Packager
	Pricing  designer.Pricing
	Flash    *flash.Codec
	CK       *cartcookie.Codec
}

func NewDesignerHandler(store *designer.Store, pk *designer.Packager, pricing designer.Pricing, fl *flash.Codec, ck *cartcookie.Codec) *DesignerHandler {
	return &DesignerHandler{Store: store, Packager: pk, Pricing: pricing, Flash: fl, CK: ck}
}

type createSceneForm struct {
	GarmentColor string `json:"garment_color" binding:"omitempty,oneof=white black"`
}

// Create handles POST /designer/scenes.
func (h *DesignerHandler) Create(c *gin.Context) {
	var form createSceneForm
	if err := c.ShouldBindJSON(&form); err != nil && !errors.Is(err, io.EOF) {
		failValidation(c, err, &form)
		return
	}

	id, ctrl, err := h.Store.Create(designer.GarmentColor(form.GarmentColor))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scene": h.sceneView(id, ctrl)})
}

// Show handles GET /designer/scenes/:id.
func (h *DesignerHandler) Show(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}
	render.OK(c, gin.H{"scene": h.sceneView(id, ctrl)})
}

type backgroundForm struct {
	GarmentColor string `json:"garment_color" binding:"required,oneof=white black"`
}

// SetBackground handles POST /designer/scenes/:id/background. The layer
// and its transform survive the color switch.
func (h *DesignerHandler) SetBackground(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}

	var form backgroundForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}
	if err := ctrl.SetBackground(designer.GarmentColor(form.GarmentColor)); err != nil {
		h.fail(c, err)
		return
	}
	render.OK(c, gin.H{"scene": h.sceneView(id, ctrl)})
}

// UploadImage handles POST /designer/scenes/:id/image (multipart "image").
// The new image replaces any existing layer, scaled to fit and centered.
func (h *DesignerHandler) UploadImage(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}

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

	data, err := io.ReadAll(f)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	mimeType := fh.Header.Get("Content-Type")
	if err := ctrl.LoadImage(c.Request.Context(), data, mimeType, fh.Size); err != nil {
		h.fail(c, err)
		return
	}

	render.OK(c, gin.H{"scene": h.sceneView(id, ctrl)})
}

// CenterLayer handles POST /designer/scenes/:id/layer/center.
func (h *DesignerHandler) CenterLayer(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}
	ctrl.CenterLayer()
	render.OK(c, gin.H{"scene": h.sceneView(id, ctrl)})
}

type rotateForm struct {
	Delta float64 `json:"delta"`
}

// RotateLayer handles POST /designer/scenes/:id/layer/rotate. A missing or
// zero delta applies the default 90 degree step.
func (h *DesignerHandler) RotateLayer(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}

	var form rotateForm
	if err := c.ShouldBindJSON(&form); err != nil && !errors.Is(err, io.EOF) {
		failValidation(c, err, &form)
		return
	}
	ctrl.RotateLayer(form.Delta)
	render.OK(c, gin.H{"scene": h.sceneView(id, ctrl)})
}

type transformForm struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	DX       *float64 `json:"dx"`
	DY       *float64 `json:"dy"`
	Scale    *float64 `json:"scale" binding:"omitempty,gt=0"`
	Rotation *float64 `json:"rotation"`
}

// TransformLayer handles POST /designer/scenes/:id/layer/transform. It
// accepts absolute position (x, y), relative drag deltas (dx, dy), scale
// and rotation, each applied only when present.
func (h *DesignerHandler) TransformLayer(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}

	var form transformForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}

	if form.X != nil && form.Y != nil {
		ctrl.SetLayerPosition(*form.X, *form.Y)
	}
	if form.DX != nil || form.DY != nil {
		dx, dy := 0.0, 0.0
		if form.DX != nil {
			dx = *form.DX
		}
		if form.DY != nil {
			dy = *form.DY
		}
		ctrl.MoveLayer(dx, dy)
	}
	if form.Scale != nil {
		ctrl.ScaleLayer(*form.Scale)
	}
	if form.Rotation != nil {
		ctrl.SetLayerRotation(*form.Rotation)
	}

	render.OK(c, gin.H{"scene": h.sceneView(id, ctrl)})
}

// RemoveLayer handles DELETE /designer/scenes/:id/layer.
func (h *DesignerHandler) RemoveLayer(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}
	ctrl.RemoveLayer()
	render.OK(c, gin.H{"scene": h.sceneView(id, ctrl)})
}

// Preview handles GET /designer/scenes/:id/preview: the composited PNG at
// scene resolution.
func (h *DesignerHandler) Preview(c *gin.Context) {
	_, ctrl, ok := h.scene(c)
	if !ok {
		return
	}

	png, err := ctrl.Export()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// Confirm handles POST /designer/scenes/:id/confirm: export, upload, build
// the synthetic product and add it to the cart, then send the client to
// /cart. Nothing is added if any step fails.
func (h *DesignerHandler) Confirm(c *gin.Context) {
	id, ctrl, ok := h.scene(c)
	if !ok {
		return
	}

	cc, _ := h.CK.Get(c)
	item, err := h.Packager.Confirm(c.Request.Context(), ctrl, cc)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.CK.Set(c, cc)
	h.Store.Drop(id)

	middleware.SetFlashCookie(c, h.Flash, view.Flash{Kind: view.FlashSuccess, Message: "Your design is in the cart."})
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"redirect": "/cart",
		"item":     item,
	})
}

func (h *DesignerHandler) scene(c *gin.Context) (string, *designer.Controller, bool) {
	id := c.Param("id")
	ctrl, ok := h.Store.Get(id)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("That design session expired. Start a new one."))
		return "", nil, false
	}
	return id, ctrl, true
}

func (h *DesignerHandler) sceneView(id string, ctrl *designer.Controller) view.DesignerScene {
	snap := ctrl.Snapshot()
	vs := view.DesignerScene{
		SceneID:    id,
		Width:      snap.Width,
		Height:     snap.Height,
		Background: string(snap.Background),
		BasePrice:  view.MoneyFromCents(h.Pricing.BasePriceCents, h.Pricing.Currency),
		Surcharge:  view.MoneyFromCents(h.Pricing.PrintSurchargeCents, h.Pricing.Currency),
		Total:      view.MoneyFromCents(h.Pricing.TotalCents(), h.Pricing.Currency),
	}
	if l := snap.Layer; l != nil {
		vs.Layer = &view.DesignerLayer{
			X:        l.X,
			Y:        l.Y,
			Scale:    l.Scale,
			Rotation: l.Rotation,
			Width:    l.Width,
			Height:   l.Height,
			Selected: true,
		}
	}
	return vs
}

// fail maps designer sentinel errors onto the HTTP error taxonomy.
func (h *DesignerHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, designer.ErrFileTooLarge):
		middleware.Fail(c, apperr.TooLargeErr("That file is too large. Max 5 MB."))
	case errors.Is(err, designer.ErrUnsupportedType):
		middleware.Fail(c, apperr.UnsupportedErr("Only image files are supported."))
	case errors.Is(err, designer.ErrDecodeFailed):
		middleware.Fail(c, apperr.InvalidErr("That image could not be read.", nil))
	case errors.Is(err, designer.ErrInvalidColor):
		middleware.Fail(c, apperr.InvalidErr("Unknown garment color.", nil))
	case errors.Is(err, designer.ErrEmptyDesign):
		middleware.Fail(c, apperr.InvalidErr("Upload a design first.", nil))
	case errors.Is(err, designer.ErrSuperseded):
		middleware.Fail(c, apperr.ConflictErr("The design changed while processing. Try again."))
	case errors.Is(err, designer.ErrUploadFailed):
		middleware.Fail(c, apperr.UnavailableErr("The design could not be uploaded. Try again.", err))
	default:
		middleware.Fail(c, err)
	}
}
