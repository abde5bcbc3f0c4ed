// renderdesign composites a design image onto a garment mockup from the
// command line. Handy for eyeballing the rasterizer without the web app.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"remeralab.com/app/internal/modules/designer"
)

func main() {
	imagePath := flag.String("image", "", "Path to the design image (png, jpeg, gif, webp)")
	color := flag.String("color", "white", "Garment color (white, black)")
	out := flag.String("out", "design.png", "Output PNG path")
	scale := flag.Float64("scale", 0, "Override layer scale (0 keeps fit-to-box)")
	rotation := flag.Float64("rotation", 0, "Layer rotation in degrees")
	x := flag.Float64("x", -1, "Layer X (top-left, scene px); -1 keeps centered")
	y := flag.Float64("y", -1, "Layer Y (top-left, scene px); -1 keeps centered")

	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -image is required")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		fatalf("read image: %v", err)
	}

	ctrl := designer.NewController(designer.Config{})
	if err := ctrl.Init(designer.GarmentColor(*color)); err != nil {
		fatalf("init scene: %v", err)
	}

	mime := http.DetectContentType(data)
	if err := ctrl.LoadImage(context.Background(), data, mime, int64(len(data))); err != nil {
		fatalf("load image: %v", err)
	}

	if *scale > 0 {
		ctrl.ScaleLayer(*scale)
	}
	if *rotation != 0 {
		ctrl.SetLayerRotation(*rotation)
	}
	if *x >= 0 && *y >= 0 {
		ctrl.SetLayerPosition(*x, *y)
	}

	png, err := ctrl.Export()
	if err != nil {
		fatalf("export: %v", err)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		fatalf("write output: %v", err)
	}

	snap := ctrl.Snapshot()
	fmt.Printf("Wrote %s (%dx%d, %s garment)\n", *out, snap.Width, snap.Height, snap.Background)
	if l := snap.Layer; l != nil {
		fmt.Printf("Layer: pos=(%.1f, %.1f) scale=%.3f rotation=%.1f source=%dx%d\n",
			l.X, l.Y, l.Scale, l.Rotation, l.Width, l.Height)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
