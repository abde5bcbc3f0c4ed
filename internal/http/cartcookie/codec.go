// Package cartcookie persists the cart client-side in an HMAC-signed
// cookie. There is no server-side cart: catalog lines carry just the
// product id, size and quantity; custom design lines embed the whole
// synthetic product so they survive without a catalog row.
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/modules/designer"
)

var ErrInvalid = errors.New("invalid cart cookie")

const maxQty = 99

type Item struct {
	ProductID string                  `json:"product_id"`
	Size      string                  `json:"size"`
	Qty       int                     `json:"qty"`
	Custom    *designer.CustomProduct `json:"custom,omitempty"`
}

func (it Item) IsCustom() bool { return it.Custom != nil }

type Cart struct {
	Items []Item `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []Item{}}
}

// AddItem merges by (product id, size), matching how the storefront keys
// cart lines.
func (c *Cart) AddItem(productID, size string, qty int) {
	if productID == "" || qty <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items[i].Qty = clampQty(c.Items[i].Qty + qty)
			return
		}
	}
	c.Items = append(c.Items, Item{ProductID: productID, Size: size, Qty: clampQty(qty)})
}

// AddCustomItem appends a custom design line. Synthetic ids are unique per
// confirm, so custom lines never merge.
func (c *Cart) AddCustomItem(p designer.CustomProduct, size string, qty int) {
	if qty <= 0 {
		qty = 1
	}
	c.Items = append(c.Items, Item{
		ProductID: p.ID,
		Size:      size,
		Qty:       clampQty(qty),
		Custom:    &p,
	})
}

// UpdateQuantity sets the quantity for a line; zero or less removes it.
func (c *Cart) UpdateQuantity(productID, size string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID, size)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items[i].Qty = clampQty(qty)
			return
		}
	}
}

func (c *Cart) RemoveItem(productID, size string) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID == productID && it.Size == size {
			continue
		}
		out = append(out, it)
	}
	c.Items = out
}

func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

func clampQty(q int) int {
	if q < 1 {
		return 1
	}
	if q > maxQty {
		return maxQty
	}
	return q
}

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(cart *Cart) (string, error) {
	b, err := json.Marshal(cart)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (*Cart, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var cart Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, ErrInvalid
	}
	return &cart, nil
}

// Get reads the cart from the request cookie. A missing cookie yields an
// empty cart; a tampered one is cleared and also yields an empty cart.
func (c *Codec) Get(ctx *gin.Context) (*Cart, error) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return NewCart(), nil
	}
	cart, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return NewCart(), err
	}
	return cart, nil
}

func (c *Codec) Set(ctx *gin.Context, cart *Cart) {
	val, err := c.Encode(cart)
	if err != nil {
		return
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
