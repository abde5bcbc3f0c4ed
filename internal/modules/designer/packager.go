package designer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"remeralab.com/app/internal/upload"
)

const (
	// IDPrefix namespaces synthetic product ids so they can never collide
	// with catalog product ids.
	IDPrefix = "custom-"

	// Custom designs ship in one synthetic size with effectively unlimited
	// stock; the garment itself is printed to order.
	SyntheticSize  = "M"
	SyntheticStock = 999
)

// CustomProduct is the synthetic catalog record a confirmed design becomes.
// The JSON shape matches what the cart/checkout flow expects from real
// catalog products, plus the custom-design block.
type CustomProduct struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	PriceCents   int64           `json:"price"`
	Images       []ProductImage  `json:"images"`
	Category     ProductCategory `json:"category"`
	IsCustom     bool            `json:"isCustom"`
	CustomDesign CustomDesign    `json:"customDesign"`
	Sizes        []SizeStock     `json:"sizes"`
}

type ProductImage struct {
	URL string `json:"url"`
}

type ProductCategory struct {
	Name string `json:"name"`
}

type SizeStock struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type CustomDesign struct {
	ClientImageURL string       `json:"clientImageUrl"`
	GarmentColor   GarmentColor `json:"garmentColor"`
	SceneSnapshot  Snapshot     `json:"sceneSnapshot"`
}

// Pricing is flat-rate: base garment plus a fixed print surcharge,
// independent of the artwork. Product decision, not a computation.
type Pricing struct {
	BasePriceCents      int64
	PrintSurchargeCents int64
	Currency            string
}

func (p Pricing) TotalCents() int64 {
	return p.BasePriceCents + p.PrintSurchargeCents
}

// CartAdder is the externally owned cart the packager hands finished items
// to. Adding is synchronous and local from the packager's point of view.
type CartAdder interface {
	AddCustomItem(item CustomProduct, size string, qty int)
}

type Packager struct {
	uploader upload.Uploader
	pricing  Pricing
	now      func() time.Time
}

func NewPackager(up upload.Uploader, pricing Pricing) *Packager {
	return &Packager{uploader: up, pricing: pricing, now: time.Now}
}

// Package uploads an exported raster and builds the synthetic cart item.
// On upload failure nothing is produced and the caller's scene is left
// untouched, so the user can retry.
func (p *Packager) Package(ctx context.Context, exported []byte, color GarmentColor, snap Snapshot) (CustomProduct, error) {
	if len(exported) == 0 {
		return CustomProduct{}, ErrEmptyDesign
	}

	res, err := p.uploader.Put(ctx, bytes.NewReader(exported), upload.PutInput{
		Filename:    "custom-design.png",
		ContentType: "image/png",
		Size:        int64(len(exported)),
	})
	if err != nil {
		return CustomProduct{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return CustomProduct{
		ID:          fmt.Sprintf("%s%d", IDPrefix, p.now().UnixMilli()),
		Name:        fmt.Sprintf("Custom %s Tee", color.DisplayName()),
		Description: "T-shirt with a customer-supplied print",
		PriceCents:  p.pricing.TotalCents(),
		Images:      []ProductImage{{URL: res.URL}},
		Category:    ProductCategory{Name: "Custom"},
		IsCustom:    true,
		CustomDesign: CustomDesign{
			ClientImageURL: res.URL,
			GarmentColor:   color,
			SceneSnapshot:  snap,
		},
		Sizes: []SizeStock{{Size: SyntheticSize, Stock: SyntheticStock}},
	}, nil
}

// Confirm runs the whole confirm flow: export the scene, upload, build the
// item and hand it to the cart with quantity 1. All-or-nothing from the
// cart's perspective; a scene reinitialized mid-upload yields ErrSuperseded
// and no cart mutation.
func (p *Packager) Confirm(ctx context.Context, ctrl *Controller, cart CartAdder) (CustomProduct, error) {
	exported, err := ctrl.Export()
	if err != nil {
		return CustomProduct{}, err
	}
	gen := ctrl.Generation()

	item, err := p.Package(ctx, exported, ctrl.Background(), ctrl.Snapshot())
	if err != nil {
		return CustomProduct{}, err
	}

	if !ctrl.GenerationIs(gen) {
		return CustomProduct{}, ErrSuperseded
	}

	cart.AddCustomItem(item, SyntheticSize, 1)
	return item, nil
}
