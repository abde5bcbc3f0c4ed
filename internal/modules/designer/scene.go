// Package designer owns the garment design canvas: a fixed-size scene with
// a mockup background and at most one transformable user image layer, plus
// the rasterized export and cart packaging that turn a finished design into
// a synthetic cart item.
package designer

import (
	"image"
)

type GarmentColor string

const (
	GarmentWhite GarmentColor = "white"
	GarmentBlack GarmentColor = "black"
)

func ParseGarmentColor(s string) (GarmentColor, error) {
	switch GarmentColor(s) {
	case GarmentWhite, GarmentBlack:
		return GarmentColor(s), nil
	default:
		return "", ErrInvalidColor
	}
}

func (g GarmentColor) DisplayName() string {
	switch g {
	case GarmentBlack:
		return "Black"
	default:
		return "White"
	}
}

// Scene is the editable design surface: fixed dimensions, a garment color
// for the mockup background, and at most one layer. Adding a second image
// replaces the first.
type Scene struct {
	Width      int
	Height     int
	Background GarmentColor
	Layer      *Layer
}

// Layer is a placed user image. X, Y locate the top-left corner of the
// scaled, unrotated bounding box; rotation is applied about the box center
// at render time. Scale is uniform and never zero or negative.
type Layer struct {
	src image.Image

	X        float64
	Y        float64
	Scale    float64
	Rotation float64 // degrees, clockwise, normalized to [0, 360)
	Selected bool
}

func (l *Layer) SourceWidth() int {
	if l.src == nil {
		return 0
	}
	return l.src.Bounds().Dx()
}

func (l *Layer) SourceHeight() int {
	if l.src == nil {
		return 0
	}
	return l.src.Bounds().Dy()
}

// ScaledSize returns the layer bounding box dimensions after scaling,
// before rotation.
func (l *Layer) ScaledSize() (w, h float64) {
	return float64(l.SourceWidth()) * l.Scale, float64(l.SourceHeight()) * l.Scale
}

// Snapshot is the serialized transform state attached to an exported
// design. It round-trips position/scale/rotation so a design could be
// reopened later; nothing re-imports it today.
type Snapshot struct {
	Version    int            `json:"version"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background GarmentColor   `json:"background"`
	Layer      *LayerSnapshot `json:"layer,omitempty"`
}

type LayerSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

const snapshotVersion = 1
