package designer

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remeralab.com/app/internal/upload"
)

type fakeUploader struct {
	url    string
	err    error
	puts   int
	gotIn  upload.PutInput
	onPut  func()
	gotLen int64
}

func (f *fakeUploader) Put(_ context.Context, r io.Reader, in upload.PutInput) (upload.PutResult, error) {
	f.puts++
	f.gotIn = in
	n, _ := io.Copy(io.Discard, r)
	f.gotLen = n
	if f.onPut != nil {
		f.onPut()
	}
	if f.err != nil {
		return upload.PutResult{}, f.err
	}
	return upload.PutResult{Key: "designs/test.png", URL: f.url}, nil
}

func (f *fakeUploader) Delete(context.Context, string) error { return nil }

type fakeCart struct {
	items []CustomProduct
	sizes []string
	qtys  []int
}

func (f *fakeCart) AddCustomItem(item CustomProduct, size string, qty int) {
	f.items = append(f.items, item)
	f.sizes = append(f.sizes, size)
	f.qtys = append(f.qtys, qty)
}

func testPricing() Pricing {
	return Pricing{BasePriceCents: 12000, PrintSurchargeCents: 3500, Currency: "ARS"}
}

func TestPackage_BuildsSyntheticProduct(t *testing.T) {
	up := &fakeUploader{url: "https://cdn.example.com/designs/test.png"}
	pk := NewPackager(up, testPricing())
	pk.now = func() time.Time { return time.UnixMilli(1724900000000) }

	snap := Snapshot{Version: 1, Width: 400, Height: 500, Background: GarmentBlack}
	item, err := pk.Package(context.Background(), []byte("png-bytes"), GarmentBlack, snap)
	require.NoError(t, err)

	assert.Equal(t, "custom-1724900000000", item.ID)
	assert.Equal(t, "Custom Black Tee", item.Name)
	assert.Equal(t, int64(15500), item.PriceCents)
	assert.True(t, item.IsCustom)
	require.Len(t, item.Images, 1)
	assert.Equal(t, up.url, item.Images[0].URL)
	assert.Equal(t, up.url, item.CustomDesign.ClientImageURL)
	assert.Equal(t, GarmentBlack, item.CustomDesign.GarmentColor)
	assert.Equal(t, snap, item.CustomDesign.SceneSnapshot)
	require.Len(t, item.Sizes, 1)
	assert.Equal(t, SizeStock{Size: "M", Stock: 999}, item.Sizes[0])

	assert.Equal(t, "image/png", up.gotIn.ContentType)
	assert.Equal(t, int64(9), up.gotLen)
}

func TestPackage_UniqueIDPrefix(t *testing.T) {
	up := &fakeUploader{url: "https://cdn.example.com/d.png"}
	pk := NewPackager(up, testPricing())

	item, err := pk.Package(context.Background(), []byte("x"), GarmentWhite, Snapshot{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(item.ID, IDPrefix))
}

func TestPackage_UploadFailure(t *testing.T) {
	up := &fakeUploader{err: errors.New("bucket gone")}
	pk := NewPackager(up, testPricing())

	_, err := pk.Package(context.Background(), []byte("x"), GarmentWhite, Snapshot{})
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestPackage_EmptyExport(t *testing.T) {
	up := &fakeUploader{url: "u"}
	pk := NewPackager(up, testPricing())

	_, err := pk.Package(context.Background(), nil, GarmentWhite, Snapshot{})
	assert.ErrorIs(t, err, ErrEmptyDesign)
	assert.Zero(t, up.puts)
}

func TestConfirm_AddsToCart(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)

	up := &fakeUploader{url: "https://cdn.example.com/d.png"}
	pk := NewPackager(up, testPricing())
	cart := &fakeCart{}

	item, err := pk.Confirm(context.Background(), ctrl, cart)
	require.NoError(t, err)

	require.Len(t, cart.items, 1)
	assert.Equal(t, item.ID, cart.items[0].ID)
	assert.Equal(t, "M", cart.sizes[0])
	assert.Equal(t, 1, cart.qtys[0])
	require.NotNil(t, cart.items[0].CustomDesign.SceneSnapshot.Layer)
}

func TestConfirm_EmptySceneNoCartMutation(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))

	up := &fakeUploader{url: "u"}
	pk := NewPackager(up, testPricing())
	cart := &fakeCart{}

	_, err := pk.Confirm(context.Background(), ctrl, cart)
	assert.ErrorIs(t, err, ErrEmptyDesign)
	assert.Empty(t, cart.items)
	assert.Zero(t, up.puts)
}

func TestConfirm_UploadFailureLeavesSceneAndCart(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)

	up := &fakeUploader{err: errors.New("network down")}
	pk := NewPackager(up, testPricing())
	cart := &fakeCart{}

	_, err := pk.Confirm(context.Background(), ctrl, cart)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Empty(t, cart.items)
	assert.True(t, ctrl.HasLayer())
}

func TestConfirm_SupersededByReinit(t *testing.T) {
	ctrl := NewController(Config{})
	require.NoError(t, ctrl.Init(GarmentWhite))
	loadTestImage(t, ctrl, 100, 100)

	up := &fakeUploader{url: "u"}
	// Reinitialize the scene while the upload is in flight.
	up.onPut = func() {
		require.NoError(t, ctrl.Init(GarmentBlack))
	}
	pk := NewPackager(up, testPricing())
	cart := &fakeCart{}

	_, err := pk.Confirm(context.Background(), ctrl, cart)
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.Empty(t, cart.items)
}
