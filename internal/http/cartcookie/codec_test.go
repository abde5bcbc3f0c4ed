package cartcookie

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remeralab.com/app/internal/modules/designer"
)

func testCodec() *Codec {
	return New([]byte("test-secret"), "cart", false)
}

func TestCart_AddItemMergesByProductAndSize(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 1)
	c.AddItem("p1", "M", 2)
	c.AddItem("p1", "L", 1)

	require.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Items[0].Qty)
	assert.Equal(t, "L", c.Items[1].Size)
	assert.Equal(t, 4, c.Count())
}

func TestCart_AddItemClampsQty(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 50)
	c.AddItem("p1", "M", 60)
	assert.Equal(t, 99, c.Items[0].Qty)

	c.AddItem("p2", "M", 0)
	assert.Len(t, c.Items, 1)
}

func TestCart_CustomLinesNeverMerge(t *testing.T) {
	c := NewCart()
	item := designer.CustomProduct{ID: "custom-1", Name: "Custom White Tee", PriceCents: 15500, IsCustom: true}
	c.AddCustomItem(item, "M", 1)
	c.AddCustomItem(item, "M", 1)

	require.Len(t, c.Items, 2)
	assert.True(t, c.Items[0].IsCustom())
	assert.True(t, c.Items[1].IsCustom())
}

func TestCart_UpdateQuantityZeroRemoves(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.UpdateQuantity("p1", "M", 0)
	assert.Empty(t, c.Items)
}

func TestCart_RemoveItem(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 1)
	c.AddItem("p2", "M", 1)
	c.RemoveItem("p1", "M")

	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := testCodec()

	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.AddCustomItem(designer.CustomProduct{
		ID:         "custom-42",
		Name:       "Custom Black Tee",
		PriceCents: 15500,
		IsCustom:   true,
		CustomDesign: designer.CustomDesign{
			ClientImageURL: "https://cdn.example.com/d.png",
			GarmentColor:   designer.GarmentBlack,
		},
	}, "M", 1)

	v, err := codec.Encode(c)
	require.NoError(t, err)

	got, err := codec.Decode(v)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, c.Items[0], got.Items[0])
	require.NotNil(t, got.Items[1].Custom)
	assert.Equal(t, "custom-42", got.Items[1].Custom.ID)
	assert.Equal(t, designer.GarmentBlack, got.Items[1].Custom.CustomDesign.GarmentColor)
}

func TestCodec_RejectsTamperedPayload(t *testing.T) {
	codec := testCodec()
	c := NewCart()
	c.AddItem("p1", "M", 1)

	v, err := codec.Encode(c)
	require.NoError(t, err)

	parts := strings.SplitN(v, ".", 2)
	tampered := parts[0] + "x." + parts[1]
	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = codec.Decode("garbage")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_RejectsWrongSecret(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 1)

	v, err := testCodec().Encode(c)
	require.NoError(t, err)

	other := New([]byte("other-secret"), "cart", false)
	_, err = other.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_GetMissingCookieYieldsEmptyCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)

	cart, err := testCodec().Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCodec_GetTamperedCookieClearsAndYieldsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: "cart", Value: "bogus.value"})

	cart, err := testCodec().Get(ctx)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, cart.Items)

	// The bad cookie is expired on the response.
	res := w.Result()
	require.NotEmpty(t, res.Cookies())
	assert.Equal(t, "cart", res.Cookies()[0].Name)
	assert.Negative(t, res.Cookies()[0].MaxAge)
}
