package flash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remeralab.com/app/pkg/view"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"), "notice", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Order placed."})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, f.Kind)
	assert.Equal(t, "Order placed.", f.Message)
}

func TestCodec_RejectsTampering(t *testing.T) {
	c := NewCodec([]byte("secret"), "notice", false)
	v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "hi"})
	require.NoError(t, err)

	parts := strings.SplitN(v, ".", 2)
	_, err = c.Decode(parts[0] + "x." + parts[1])
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("nonsense")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_RejectsEmptyMessage(t *testing.T) {
	c := NewCodec([]byte("secret"), "notice", false)
	v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "   "})
	require.NoError(t, err)

	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}
