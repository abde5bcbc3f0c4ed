package designer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func loadTestImage(t *testing.T, ctrl *Controller, w, h int) {
	t.Helper()
	data := pngBytes(t, w, h, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
	require.NoError(t, ctrl.LoadImage(context.Background(), data, "image/png", int64(len(data))))
}

func TestLoadImage_FitsAndCenters(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	// 600x700 exceeds the 300x350 box on both axes; scale = 0.5.
	loadTestImage(t, ctrl, 600, 700)

	st, ok := ctrl.LayerState()
	require.True(t, ok)
	assert.InDelta(t, 0.5, st.Scale, 1e-9)
	assert.Equal(t, 600, st.Width)
	assert.Equal(t, 700, st.Height)

	// Centered: (400-300)/2, (500-350)/2.
	assert.InDelta(t, 50, st.X, 1e-9)
	assert.InDelta(t, 75, st.Y, 1e-9)
}

func TestLoadImage_NeverUpscales(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	loadTestImage(t, ctrl, 100, 80)

	st, ok := ctrl.LayerState()
	require.True(t, ok)
	assert.Equal(t, 1.0, st.Scale)
	assert.InDelta(t, 150, st.X, 1e-9)
	assert.InDelta(t, 210, st.Y, 1e-9)
}

func TestLoadImage_ScaledBoxWithinLimits(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	for _, dims := range [][2]int{{301, 10}, {10, 351}, {4000, 4000}, {299, 349}} {
		loadTestImage(t, ctrl, dims[0], dims[1])

		st, ok := ctrl.LayerState()
		require.True(t, ok)
		assert.LessOrEqual(t, st.Scale, 1.0)
		assert.LessOrEqual(t, float64(st.Width)*st.Scale, 300.0+1e-9)
		assert.LessOrEqual(t, float64(st.Height)*st.Scale, 350.0+1e-9)
	}
}

func TestLoadImage_RejectsOversizedFile(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 50, 50)
	before, _ := ctrl.LayerState()

	data := pngBytes(t, 10, 10, color.White)
	err := ctrl.LoadImage(context.Background(), data, "image/png", 6*1024*1024)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// Existing layer untouched.
	after, ok := ctrl.LayerState()
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestLoadImage_RejectsNonImageType(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	err := ctrl.LoadImage(context.Background(), []byte("%PDF-1.4"), "application/pdf", 8)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.False(t, ctrl.HasLayer())
}

func TestLoadImage_RejectsUndecodableData(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	err := ctrl.LoadImage(context.Background(), []byte("not an image at all"), "image/png", 19)
	assert.ErrorIs(t, err, ErrDecodeFailed)
	assert.False(t, ctrl.HasLayer())
}

func TestLoadImage_ReplacesExistingLayer(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	loadTestImage(t, ctrl, 100, 100)
	loadTestImage(t, ctrl, 200, 120)

	st, ok := ctrl.LayerState()
	require.True(t, ok)
	assert.Equal(t, 200, st.Width)
	assert.Equal(t, 120, st.Height)
}

func TestInit_SupersedesInFlightLoad(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	gen := ctrl.Generation()
	require.NoError(t, ctrl.Init(GarmentBlack))
	assert.NotEqual(t, gen, ctrl.Generation())
	assert.False(t, ctrl.GenerationIs(gen))
}

func TestLoadImage_ReinitDuringDecodeDiscardsResult(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	// A registered format whose decode reinitializes the scene, so the
	// decode result arrives against a stale generation.
	const magic = "RSTD"
	image.RegisterFormat("reinit-during-decode", magic,
		func(io.Reader) (image.Image, error) {
			require.NoError(t, ctrl.Init(GarmentBlack))
			return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
		},
		func(io.Reader) (image.Config, error) {
			return image.Config{Width: 10, Height: 10}, nil
		})

	err := ctrl.LoadImage(context.Background(), []byte(magic), "image/x-design", int64(len(magic)))
	assert.ErrorIs(t, err, ErrSuperseded)

	// The decoded image was never applied; the reinitialized scene stands.
	assert.False(t, ctrl.HasLayer())
	assert.Equal(t, GarmentBlack, ctrl.Background())
}

func TestCenterLayer_Idempotent(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)

	ctrl.MoveLayer(-500, 900)
	ctrl.CenterLayer()
	first, _ := ctrl.LayerState()

	ctrl.CenterLayer()
	second, _ := ctrl.LayerState()
	assert.Equal(t, first, second)

	assert.InDelta(t, 150, first.X, 1e-9)
	assert.InDelta(t, 200, first.Y, 1e-9)
}

func TestCenterLayer_EmptySceneNoop(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	ctrl.CenterLayer() // must not panic
	assert.False(t, ctrl.HasLayer())
}

func TestRotateLayer_FourStepsReturnToZero(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)

	for i := 0; i < 4; i++ {
		ctrl.RotateLayer(0) // default 90 step
	}
	st, _ := ctrl.LayerState()
	assert.Equal(t, 0.0, st.Rotation)
}

func TestRotateLayer_NormalizesNegatives(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)

	ctrl.RotateLayer(-45)
	st, _ := ctrl.LayerState()
	assert.Equal(t, 315.0, st.Rotation)

	ctrl.SetLayerRotation(720.5)
	st, _ = ctrl.LayerState()
	assert.InDelta(t, 0.5, st.Rotation, 1e-9)
}

func TestScaleLayer_ClampsToFloor(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)

	ctrl.ScaleLayer(-3)
	st, _ := ctrl.LayerState()
	assert.Greater(t, st.Scale, 0.0)
}

func TestRemoveLayer_EmptySceneNoop(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	events := 0
	ctrl.Subscribe(func(Event) { events++ })
	ctrl.RemoveLayer()
	assert.Zero(t, events)
}

func TestSetBackground_KeepsLayerTransform(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)
	ctrl.MoveLayer(10, -20)
	ctrl.SetLayerRotation(30)
	before, _ := ctrl.LayerState()

	require.NoError(t, ctrl.SetBackground(GarmentBlack))

	after, ok := ctrl.LayerState()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, GarmentBlack, ctrl.Background())
}

func TestSetBackground_RejectsUnknownColor(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	assert.ErrorIs(t, ctrl.SetBackground("magenta"), ErrInvalidColor)
}

func TestExport_EmptySceneFails(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	_, err := ctrl.Export()
	assert.ErrorIs(t, err, ErrEmptyDesign)
}

func TestExport_SceneDimensionsAndContent(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentBlack))
	loadTestImage(t, ctrl, 100, 100)

	out, err := ctrl.Export()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())

	// Layer is centered; the scene center pixel must be the red test image,
	// not the dark garment.
	r, _, _, _ := img.At(200, 250).RGBA()
	assert.Greater(t, r>>8, uint32(150))
}

func TestExport_Deterministic(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 120, 90)
	ctrl.SetLayerRotation(45)

	a, err := ctrl.Export()
	require.NoError(t, err)
	b, err := ctrl.Export()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Export must not mutate the scene.
	st, ok := ctrl.LayerState()
	require.True(t, ok)
	assert.Equal(t, 45.0, st.Rotation)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentBlack))
	loadTestImage(t, ctrl, 100, 60)
	ctrl.SetLayerPosition(12.5, 40)
	ctrl.ScaleLayer(0.75)
	ctrl.SetLayerRotation(90)

	snap := ctrl.Snapshot()
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, GarmentBlack, snap.Background)
	require.NotNil(t, snap.Layer)
	assert.Equal(t, 12.5, snap.Layer.X)
	assert.Equal(t, 40.0, snap.Layer.Y)
	assert.Equal(t, 0.75, snap.Layer.Scale)
	assert.Equal(t, 90.0, snap.Layer.Rotation)
	assert.Equal(t, 100, snap.Layer.Width)
	assert.Equal(t, 60, snap.Layer.Height)
}

func TestParseGarmentColor(t *testing.T) {
	for _, s := range []string{"white", "black"} {
		c, err := ParseGarmentColor(s)
		require.NoError(t, err)
		assert.Equal(t, GarmentColor(s), c)
	}
	_, err := ParseGarmentColor("red")
	assert.ErrorIs(t, err, ErrInvalidColor)
}
