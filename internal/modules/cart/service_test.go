package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remeralab.com/app/internal/http/cartcookie"
	"remeralab.com/app/internal/modules/designer"
	"remeralab.com/app/internal/shared/apperr"
	"remeralab.com/app/internal/shopapi"
)

type fakeCatalog struct {
	products map[string]shopapi.Product
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (shopapi.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return shopapi.Product{}, apperr.NotFoundErr("Product not found")
	}
	return p, nil
}

func catalogWith(products ...shopapi.Product) *fakeCatalog {
	m := make(map[string]shopapi.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeCatalog{products: m}
}

func TestBuildCartPage_Empty(t *testing.T) {
	svc := NewService(catalogWith(), "ARS")
	page, err := svc.BuildCartPage(context.Background(), cartcookie.NewCart())
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Count)
	assert.Equal(t, int64(0), page.TotalCents)
	assert.Equal(t, "ARS", page.Currency)
}

func TestBuildCartPage_CatalogAndCustomLines(t *testing.T) {
	svc := NewService(catalogWith(shopapi.Product{
		ID:         "p1",
		Name:       "Classic Tee",
		PriceCents: 9000,
		Active:     true,
		Images:     []shopapi.ImageRef{{URL: "https://cdn.example.com/p1.png"}},
	}), "ARS")

	cc := cartcookie.NewCart()
	cc.AddItem("p1", "M", 2)
	cc.AddCustomItem(designer.CustomProduct{
		ID:         "custom-1",
		Name:       "Custom White Tee",
		PriceCents: 15500,
		IsCustom:   true,
		Images:     []designer.ProductImage{{URL: "https://cdn.example.com/d.png"}},
	}, "M", 1)

	page, err := svc.BuildCartPage(context.Background(), cc)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Count)
	assert.Equal(t, int64(9000*2+15500), page.TotalCents)

	assert.False(t, page.Items[0].IsCustom)
	assert.Equal(t, int64(18000), page.Items[0].LineTotalCents)

	assert.True(t, page.Items[1].IsCustom)
	assert.Equal(t, "Custom White Tee", page.Items[1].Name)
	assert.Equal(t, "https://cdn.example.com/d.png", page.Items[1].ImageURL)
}

func TestBuildCartPage_DropsVanishedProducts(t *testing.T) {
	svc := NewService(catalogWith(shopapi.Product{
		ID: "kept", Name: "Kept", PriceCents: 5000, Active: true,
	}), "ARS")

	cc := cartcookie.NewCart()
	cc.AddItem("kept", "M", 1)
	cc.AddItem("gone", "M", 1)

	page, err := svc.BuildCartPage(context.Background(), cc)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, []string{"gone"}, page.RemovedItems)
}

func TestBuildCartPage_DropsInactiveProducts(t *testing.T) {
	svc := NewService(catalogWith(shopapi.Product{
		ID: "p1", Name: "Retired", PriceCents: 5000, Active: false,
	}), "ARS")

	cc := cartcookie.NewCart()
	cc.AddItem("p1", "M", 1)

	page, err := svc.BuildCartPage(context.Background(), cc)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, []string{"p1"}, page.RemovedItems)
}

func TestBuildCartPage_CustomLinesSurviveWithoutCatalog(t *testing.T) {
	// Custom lines never hit the catalog, so they survive even when every
	// catalog product is gone.
	svc := NewService(catalogWith(), "ARS")

	cc := cartcookie.NewCart()
	cc.AddCustomItem(designer.CustomProduct{ID: "custom-9", Name: "Custom Black Tee", PriceCents: 15500}, "M", 1)

	page, err := svc.BuildCartPage(context.Background(), cc)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Empty(t, page.RemovedItems)
}

func TestPrune(t *testing.T) {
	cc := cartcookie.NewCart()
	cc.AddItem("p1", "M", 1)
	cc.AddItem("p1", "L", 1)
	cc.AddItem("p2", "M", 1)
	cc.AddCustomItem(designer.CustomProduct{ID: "p1", Name: "Custom"}, "M", 1)

	Prune(cc, []string{"p1"})

	// Both p1 sizes gone; the custom line sharing the id stays.
	require.Len(t, cc.Items, 2)
	assert.Equal(t, "p2", cc.Items[0].ProductID)
	assert.True(t, cc.Items[1].IsCustom())
}
