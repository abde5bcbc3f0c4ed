package cart

import (
	"context"

	"remeralab.com/app/internal/http/cartcookie"
	"remeralab.com/app/internal/shared/apperr"
	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/pkg/view"
)

// ProductGetter resolves catalog lines to current product data. Custom
// design lines never touch it: they carry their own snapshot.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (shopapi.Product, error)
}

type Service struct {
	catalog  ProductGetter
	currency string
}

func NewService(catalog ProductGetter, currency string) *Service {
	return &Service{catalog: catalog, currency: currency}
}

// BuildCartPage resolves the cookie cart into a renderable page. Catalog
// lines whose product vanished or went inactive are dropped and reported
// in RemovedItems so the handler can rewrite the cookie.
func (s *Service) BuildCartPage(ctx context.Context, c *cartcookie.Cart) (view.CartPage, error) {
	page := view.CartPage{Items: []view.CartItem{}, Currency: s.currency}
	if c == nil || len(c.Items) == 0 {
		page.Subtotal = view.MoneyFromCents(0, s.currency)
		page.Total = view.MoneyFromCents(0, s.currency)
		return page, nil
	}

	var subtotal int64
	for _, it := range c.Items {
		if it.Qty <= 0 {
			continue
		}

		if it.IsCustom() {
			line := it.Custom.PriceCents * int64(it.Qty)
			subtotal += line
			page.Count += it.Qty
			imageURL := ""
			if len(it.Custom.Images) > 0 {
				imageURL = it.Custom.Images[0].URL
			}
			page.Items = append(page.Items, view.CartItem{
				ProductID:      it.ProductID,
				Name:           it.Custom.Name,
				ImageURL:       imageURL,
				Size:           it.Size,
				Qty:            it.Qty,
				IsCustom:       true,
				UnitPriceCents: it.Custom.PriceCents,
				LineTotalCents: line,
				UnitPrice:      view.MoneyFromCents(it.Custom.PriceCents, s.currency),
				LineTotal:      view.MoneyFromCents(line, s.currency),
			})
			continue
		}

		p, err := s.catalog.GetProduct(ctx, it.ProductID)
		if err != nil {
			if ae, ok := apperr.As(err); ok && ae.Kind == apperr.NotFound {
				page.RemovedItems = append(page.RemovedItems, it.ProductID)
				continue
			}
			return view.CartPage{}, err
		}
		if !p.Active {
			page.RemovedItems = append(page.RemovedItems, it.ProductID)
			continue
		}

		line := p.PriceCents * int64(it.Qty)
		subtotal += line
		page.Count += it.Qty
		imageURL := ""
		if len(p.Images) > 0 {
			imageURL = p.Images[0].URL
		}
		page.Items = append(page.Items, view.CartItem{
			ProductID:      p.ID,
			Name:           p.Name,
			ImageURL:       imageURL,
			Size:           it.Size,
			Qty:            it.Qty,
			UnitPriceCents: p.PriceCents,
			LineTotalCents: line,
			UnitPrice:      view.MoneyFromCents(p.PriceCents, s.currency),
			LineTotal:      view.MoneyFromCents(line, s.currency),
		})
	}

	page.SubtotalCents = subtotal
	page.Subtotal = view.MoneyFromCents(subtotal, s.currency)
	page.TotalCents = subtotal
	page.Total = view.MoneyFromCents(subtotal, s.currency)
	return page, nil
}

// Prune removes the given product ids from the cookie cart, all sizes.
func Prune(c *cartcookie.Cart, removed []string) {
	gone := make(map[string]bool, len(removed))
	for _, id := range removed {
		gone[id] = true
	}
	out := c.Items[:0]
	for _, it := range c.Items {
		if !it.IsCustom() && gone[it.ProductID] {
			continue
		}
		out = append(out, it)
	}
	c.Items = out
}
