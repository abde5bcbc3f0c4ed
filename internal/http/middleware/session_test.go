package middleware

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCodec_RoundTrip(t *testing.T) {
	sc := NewSessionCodec([]byte("secret"), "session", false, time.Hour)

	v, err := sc.encode(Claims{
		Token:    "tok-1",
		UserID:   "user-1",
		Email:    "demo@example.com",
		Name:     "Demo",
		Role:     "customer",
		IssuedAt: time.Now(),
	})
	require.NoError(t, err)

	cl, ok := sc.decode(v)
	require.True(t, ok)
	assert.Equal(t, "tok-1", cl.Token)
	assert.Equal(t, "user-1", cl.UserID)
	assert.Equal(t, "customer", cl.Role)
}

func TestSessionCodec_RejectsTampering(t *testing.T) {
	sc := NewSessionCodec([]byte("secret"), "session", false, time.Hour)
	v, err := sc.encode(Claims{Token: "t", UserID: "u", IssuedAt: time.Now()})
	require.NoError(t, err)

	parts := strings.SplitN(v, ".", 2)
	_, ok := sc.decode(parts[0] + "x." + parts[1])
	assert.False(t, ok)

	_, ok = sc.decode("junk")
	assert.False(t, ok)
}

func TestSessionCodec_RejectsExpired(t *testing.T) {
	sc := NewSessionCodec([]byte("secret"), "session", false, time.Minute)
	v, err := sc.encode(Claims{Token: "t", UserID: "u", IssuedAt: time.Now().Add(-2 * time.Minute)})
	require.NoError(t, err)

	_, ok := sc.decode(v)
	assert.False(t, ok)
}

func TestSessionCodec_RejectsIncompleteClaims(t *testing.T) {
	sc := NewSessionCodec([]byte("secret"), "session", false, time.Hour)

	v, err := sc.encode(Claims{Token: "", UserID: "u", IssuedAt: time.Now()})
	require.NoError(t, err)
	_, ok := sc.decode(v)
	assert.False(t, ok)
}
