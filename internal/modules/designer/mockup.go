package designer

import (
	"image"
	"image/color"
	"image/draw"
)

// Mockup art is generated procedurally so exports never depend on asset
// files: a neutral backdrop with a simple tee silhouette in the garment
// color. Geometry is proportional to the scene size.

type mockupPalette struct {
	fabric  color.NRGBA
	outline color.NRGBA
}

func paletteFor(g GarmentColor) mockupPalette {
	switch g {
	case GarmentBlack:
		return mockupPalette{
			fabric:  color.NRGBA{R: 30, G: 30, B: 32, A: 255},
			outline: color.NRGBA{R: 12, G: 12, B: 14, A: 255},
		}
	default:
		return mockupPalette{
			fabric:  color.NRGBA{R: 248, G: 248, B: 246, A: 255},
			outline: color.NRGBA{R: 204, G: 204, B: 200, A: 255},
		}
	}
}

var backdrop = color.NRGBA{R: 238, G: 238, B: 240, A: 255}

func renderMockup(g GarmentColor, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backdrop), image.Point{}, draw.Src)

	p := paletteFor(g)

	fw, fh := float64(w), float64(h)
	rect := func(x0, y0, x1, y1 float64) image.Rectangle {
		return image.Rect(int(x0*fw), int(y0*fh), int(x1*fw), int(y1*fh))
	}
	fill := func(r image.Rectangle, c color.NRGBA) {
		draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
	}

	// Sleeves behind the body.
	fill(rect(0.04, 0.20, 0.22, 0.46), p.outline)
	fill(rect(0.05, 0.21, 0.21, 0.45), p.fabric)
	fill(rect(0.78, 0.20, 0.96, 0.46), p.outline)
	fill(rect(0.79, 0.21, 0.95, 0.45), p.fabric)

	// Body with a 1-step outline.
	fill(rect(0.17, 0.17, 0.83, 0.96), p.outline)
	fill(rect(0.18, 0.18, 0.82, 0.95), p.fabric)

	// Collar band.
	fill(rect(0.40, 0.17, 0.60, 0.21), p.outline)

	return dst
}
