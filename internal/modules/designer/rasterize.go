package designer

import (
	"bytes"
	"image"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Export flattens the scene into a PNG: the garment mockup for the current
// background color with the layer composited at its transform. Transform
// handles and other editor chrome are never part of the raster. The result
// is deterministic for identical scene state and exporting does not mutate
// the scene. Fails with ErrEmptyDesign when no layer is present; callers
// are expected to disable export in that state.
func (c *Controller) Export() ([]byte, error) {
	c.mu.Lock()
	l := c.scene.Layer
	if l == nil {
		c.mu.Unlock()
		return nil, ErrEmptyDesign
	}
	layer := *l // transform copy; src is never mutated after load
	bg := c.scene.Background
	w, h := c.scene.Width, c.scene.Height
	c.mu.Unlock()

	img := renderScene(w, h, bg, layer)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderScene(w, h int, bg GarmentColor, layer Layer) *image.NRGBA {
	dst := renderMockup(bg, w, h)
	drawLayer(dst, layer)
	return dst
}

// drawLayer composites the layer onto dst with a single affine transform:
// uniform scale, then rotation about the scaled bounding box center, then
// translation to the layer position.
func drawLayer(dst *image.NRGBA, l Layer) {
	if l.src == nil {
		return
	}
	sb := l.src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	s := l.Scale
	theta := l.Rotation * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)

	// Rotation pivot: center of the scaled, unrotated box.
	cx := l.X + sw*s/2
	cy := l.Y + sh*s/2

	m := f64.Aff3{
		s * cos, -s * sin, cx - s*(cos*sw/2-sin*sh/2),
		s * sin, s * cos, cy - s*(sin*sw/2+cos*sh/2),
	}

	xdraw.CatmullRom.Transform(dst, m, l.src, sb, xdraw.Over, nil)
}
