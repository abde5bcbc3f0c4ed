package designer

import (
	"bytes"
	"context"
	"image"
	"math"
	"strings"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// DefaultRotateStep is the rotation applied by the rotate action.
const DefaultRotateStep = 90.0

// minScale keeps handle-drag scaling from collapsing the layer.
const minScale = 0.01

type Config struct {
	SceneWidth  int
	SceneHeight int

	// Maximum bounding box for a freshly loaded image. Images are scaled
	// down to fit it, never up.
	MaxDesignWidth  int
	MaxDesignHeight int

	MaxUploadBytes int64
}

func (c Config) withDefaults() Config {
	if c.SceneWidth <= 0 {
		c.SceneWidth = 400
	}
	if c.SceneHeight <= 0 {
		c.SceneHeight = 500
	}
	if c.MaxDesignWidth <= 0 {
		c.MaxDesignWidth = 300
	}
	if c.MaxDesignHeight <= 0 {
		c.MaxDesignHeight = 350
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 5 * 1024 * 1024
	}
	return c
}

type Event string

const (
	EventLayerAdded        Event = "layer_added"
	EventLayerRemoved      Event = "layer_removed"
	EventLayerChanged      Event = "layer_changed"
	EventBackgroundChanged Event = "background_changed"
)

// Controller is the only mutator of a Scene. All mutations are serialized
// under one mutex; decode runs outside it and its result is applied only
// if the generation captured at validation time is still current, so a
// reinitialized scene never receives a stale layer.
type Controller struct {
	mu        sync.Mutex
	cfg       Config
	scene     Scene
	gen       uint64
	observers []func(Event)
}

func NewController(cfg Config) *Controller {
	cfg = cfg.withDefaults()
	return &Controller{
		cfg: cfg,
		scene: Scene{
			Width:      cfg.SceneWidth,
			Height:     cfg.SceneHeight,
			Background: GarmentWhite,
		},
	}
}

// Init resets the scene to an empty state with the given background.
// Re-initialization discards any existing layer and supersedes in-flight
// decodes and uploads.
func (c *Controller) Init(color GarmentColor) error {
	if color == "" {
		color = GarmentWhite
	}
	if _, err := ParseGarmentColor(string(color)); err != nil {
		return err
	}

	c.mu.Lock()
	hadLayer := c.scene.Layer != nil
	c.scene.Layer = nil
	c.scene.Background = color
	c.gen++
	c.mu.Unlock()

	if hadLayer {
		c.notify(EventLayerRemoved)
	}
	return nil
}

// Subscribe registers an observer. Observers are called after the mutex is
// released and must not assume any ordering guarantees beyond per-event.
func (c *Controller) Subscribe(fn func(Event)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

func (c *Controller) notify(ev Event) {
	c.mu.Lock()
	obs := make([]func(Event), len(c.observers))
	copy(obs, c.observers)
	c.mu.Unlock()
	for _, fn := range obs {
		fn(ev)
	}
}

func (c *Controller) SetBackground(color GarmentColor) error {
	if _, err := ParseGarmentColor(string(color)); err != nil {
		return err
	}
	c.mu.Lock()
	c.scene.Background = color
	c.mu.Unlock()
	c.notify(EventBackgroundChanged)
	return nil
}

func (c *Controller) Background() GarmentColor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene.Background
}

// LoadImage validates, decodes and places an uploaded image as the scene's
// layer, replacing any prior one. Validation failures happen before any
// state change. The image is scaled uniformly to fit the max design box
// (never upscaled) and centered in the scene.
func (c *Controller) LoadImage(ctx context.Context, data []byte, mimeType string, sizeBytes int64) error {
	if sizeBytes > c.cfg.MaxUploadBytes {
		return ErrFileTooLarge
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/") {
		return ErrUnsupportedType
	}

	// Starting a load supersedes any decode still in flight.
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	// Decode outside the lock; this is the slow part.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ErrDecodeFailed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.gen != gen {
		// Scene was reinitialized or another load started; discard.
		c.mu.Unlock()
		return ErrSuperseded
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	scale := math.Min(
		math.Min(float64(c.cfg.MaxDesignWidth)/w, float64(c.cfg.MaxDesignHeight)/h),
		1.0,
	)

	c.scene.Layer = &Layer{
		src:      img,
		X:        (float64(c.scene.Width) - w*scale) / 2,
		Y:        (float64(c.scene.Height) - h*scale) / 2,
		Scale:    scale,
		Selected: true,
	}
	c.mu.Unlock()

	c.notify(EventLayerAdded)
	return nil
}

// RemoveLayer discards the current layer. No-op when the scene is empty.
func (c *Controller) RemoveLayer() {
	c.mu.Lock()
	had := c.scene.Layer != nil
	c.scene.Layer = nil
	c.mu.Unlock()
	if had {
		c.notify(EventLayerRemoved)
	}
}

// CenterLayer moves the layer so its bounding box center coincides with
// the scene center. Idempotent; no-op when empty.
func (c *Controller) CenterLayer() {
	c.mu.Lock()
	l := c.scene.Layer
	if l == nil {
		c.mu.Unlock()
		return
	}
	w, h := l.ScaledSize()
	l.X = (float64(c.scene.Width) - w) / 2
	l.Y = (float64(c.scene.Height) - h) / 2
	c.mu.Unlock()
	c.notify(EventLayerChanged)
}

// RotateLayer adds delta degrees to the layer rotation, modulo 360. A zero
// delta applies the default 90 degree step. No-op when empty.
func (c *Controller) RotateLayer(delta float64) {
	if delta == 0 {
		delta = DefaultRotateStep
	}
	c.mu.Lock()
	l := c.scene.Layer
	if l == nil {
		c.mu.Unlock()
		return
	}
	l.Rotation = normalizeAngle(l.Rotation + delta)
	c.mu.Unlock()
	c.notify(EventLayerChanged)
}

// MoveLayer translates the layer by (dx, dy). Gesture path; the layer may
// be dragged partially or fully outside the scene.
func (c *Controller) MoveLayer(dx, dy float64) {
	c.mu.Lock()
	l := c.scene.Layer
	if l == nil {
		c.mu.Unlock()
		return
	}
	l.X += dx
	l.Y += dy
	c.mu.Unlock()
	c.notify(EventLayerChanged)
}

func (c *Controller) SetLayerPosition(x, y float64) {
	c.mu.Lock()
	l := c.scene.Layer
	if l == nil {
		c.mu.Unlock()
		return
	}
	l.X, l.Y = x, y
	c.mu.Unlock()
	c.notify(EventLayerChanged)
}

// ScaleLayer sets the uniform scale factor. Clamped to a positive floor so
// handle drags can never collapse or invert the layer.
func (c *Controller) ScaleLayer(scale float64) {
	if scale < minScale {
		scale = minScale
	}
	c.mu.Lock()
	l := c.scene.Layer
	if l == nil {
		c.mu.Unlock()
		return
	}
	l.Scale = scale
	c.mu.Unlock()
	c.notify(EventLayerChanged)
}

func (c *Controller) SetLayerRotation(deg float64) {
	c.mu.Lock()
	l := c.scene.Layer
	if l == nil {
		c.mu.Unlock()
		return
	}
	l.Rotation = normalizeAngle(deg)
	c.mu.Unlock()
	c.notify(EventLayerChanged)
}

func (c *Controller) HasLayer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene.Layer != nil
}

// LayerState returns a copy of the layer transform, or ok=false when the
// scene is empty. Readers never see the mutable layer itself.
func (c *Controller) LayerState() (LayerSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l := c.scene.Layer
	if l == nil {
		return LayerSnapshot{}, false
	}
	return LayerSnapshot{
		X:        l.X,
		Y:        l.Y,
		Scale:    l.Scale,
		Rotation: l.Rotation,
		Width:    l.SourceWidth(),
		Height:   l.SourceHeight(),
	}, true
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Version:    snapshotVersion,
		Width:      c.scene.Width,
		Height:     c.scene.Height,
		Background: c.scene.Background,
	}
	if l := c.scene.Layer; l != nil {
		snap.Layer = &LayerSnapshot{
			X:        l.X,
			Y:        l.Y,
			Scale:    l.Scale,
			Rotation: l.Rotation,
			Width:    l.SourceWidth(),
			Height:   l.SourceHeight(),
		}
	}
	return snap
}

// Generation identifies the scene instance; it changes on Init and on each
// accepted LoadImage. Async completions compare it to decide staleness.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *Controller) GenerationIs(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen == gen
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
