package checkout

import (
	"context"
	"strings"

	"remeralab.com/app/internal/http/cartcookie"
	"remeralab.com/app/internal/shopapi"
)

// Cash-on-delivery and bank transfer are settled manually by an admin;
// card payments go through the shop API's payment flow.
var paymentMethods = map[string]bool{
	"efectivo":      true,
	"transferencia": true,
	"tarjeta":       true,
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, token string, in shopapi.CreateOrderInput) (shopapi.Order, error)
}

type Service struct {
	api OrderCreator
}

func NewService(api OrderCreator) *Service {
	return &Service{api: api}
}

type PlaceOrderInput struct {
	Address       shopapi.Address
	PaymentMethod string
	Notes         string
}

// PlaceOrder turns the cookie cart into a remote order. The shop API owns
// stock checks and pricing; this layer only shapes the request.
func (s *Service) PlaceOrder(ctx context.Context, token string, cart *cartcookie.Cart, in PlaceOrderInput) (shopapi.Order, error) {
	if cart == nil || len(cart.Items) == 0 {
		return shopapi.Order{}, ErrCartEmpty
	}
	if !paymentMethods[in.PaymentMethod] {
		return shopapi.Order{}, ErrBadPayment
	}
	if err := validateAddress(in.Address); err != nil {
		return shopapi.Order{}, err
	}

	items := make([]shopapi.OrderItemInput, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.Qty <= 0 {
			continue
		}
		line := shopapi.OrderItemInput{
			ProductID: it.ProductID,
			Qty:       it.Qty,
			Size:      it.Size,
		}
		if it.IsCustom() {
			imageURL := ""
			if len(it.Custom.Images) > 0 {
				imageURL = it.Custom.Images[0].URL
			}
			line.Custom = &shopapi.OrderCustomItem{
				Name:         it.Custom.Name,
				PriceCents:   it.Custom.PriceCents,
				ImageURL:     imageURL,
				GarmentColor: string(it.Custom.CustomDesign.GarmentColor),
			}
		}
		items = append(items, line)
	}
	if len(items) == 0 {
		return shopapi.Order{}, ErrCartEmpty
	}

	return s.api.CreateOrder(ctx, token, shopapi.CreateOrderInput{
		Items:           items,
		ShippingAddress: in.Address,
		PaymentMethod:   in.PaymentMethod,
		Notes:           strings.TrimSpace(in.Notes),
	})
}

func validateAddress(a shopapi.Address) error {
	if strings.TrimSpace(a.Street) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.Province) == "" ||
		strings.TrimSpace(a.PostalCode) == "" {
		return ErrMissingAddress
	}
	return nil
}
