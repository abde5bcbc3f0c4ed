package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remeralab.com/app/internal/shopapi"
)

type fakeAPI struct {
	orders    map[string]shopapi.Order
	cancelled []string
}

func (f *fakeAPI) MyOrders(context.Context, string) ([]shopapi.Order, error) {
	out := make([]shopapi.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeAPI) GetOrder(_ context.Context, _ string, id string) (shopapi.Order, error) {
	return f.orders[id], nil
}

func (f *fakeAPI) CancelOrder(_ context.Context, _ string, id string) error {
	f.cancelled = append(f.cancelled, id)
	o := f.orders[id]
	o.Status = "cancelled"
	f.orders[id] = o
	return nil
}

func sampleOrder() shopapi.Order {
	return shopapi.Order{
		ID:            "o1",
		Status:        "pending",
		PaymentStatus: "pending",
		PaymentMethod: "efectivo",
		Items: []shopapi.OrderItem{
			{ProductID: "p1", Name: "Tee", Size: "M", Qty: 2, PriceCents: 9000},
			{ProductID: "custom-1", Name: "Custom Black Tee", Size: "M", Qty: 1, PriceCents: 15500, IsCustom: true},
		},
		TotalCents: 33500,
		ShippingAddress: shopapi.Address{
			Street: "Calle 1", City: "Córdoba", Province: "Córdoba", PostalCode: "5000",
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHistory(t *testing.T) {
	api := &fakeAPI{orders: map[string]shopapi.Order{"o1": sampleOrder()}}
	svc := NewService(api, "ARS")

	history, err := svc.History(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 3, history[0].ItemCount)
	assert.Equal(t, int64(33500), history[0].Total.Cents)
}

func TestDetail_MapsLinesAndCancelFlag(t *testing.T) {
	api := &fakeAPI{orders: map[string]shopapi.Order{"o1": sampleOrder()}}
	svc := NewService(api, "ARS")

	d, err := svc.Detail(context.Background(), "tok", "o1")
	require.NoError(t, err)

	require.Len(t, d.Lines, 2)
	assert.Equal(t, int64(18000), d.Lines[0].LineTotal.Cents)
	assert.True(t, d.Lines[1].IsCustom)
	assert.True(t, d.CanCancel)
	assert.Equal(t, "Córdoba", d.Address.City)
}

func TestCancel(t *testing.T) {
	api := &fakeAPI{orders: map[string]shopapi.Order{"o1": sampleOrder()}}
	svc := NewService(api, "ARS")

	d, err := svc.Cancel(context.Background(), "tok", "o1")
	require.NoError(t, err)
	assert.Equal(t, []string{"o1"}, api.cancelled)
	assert.Equal(t, "cancelled", d.Status)
	assert.False(t, d.CanCancel)
}
