package products

import (
	"context"

	"remeralab.com/app/internal/shared/slug"
	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/pkg/view"
)

// Catalog is the slice of the shop API this module reads from.
type Catalog interface {
	ListProducts(ctx context.Context, token string, f shopapi.ProductFilter) ([]shopapi.Product, error)
	GetProduct(ctx context.Context, id string) (shopapi.Product, error)
}

type Service struct {
	catalog  Catalog
	currency string
}

func NewService(catalog Catalog, currency string) *Service {
	return &Service{catalog: catalog, currency: currency}
}

type ListFilter struct {
	CategoryID     string
	ParentCategory string
	Search         string
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]view.ProductCard, error) {
	items, err := s.catalog.ListProducts(ctx, "", shopapi.ProductFilter{
		CategoryID:     f.CategoryID,
		ParentCategory: f.ParentCategory,
		Search:         f.Search,
	})
	if err != nil {
		return nil, err
	}

	cards := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		cards = append(cards, s.card(p))
	}
	return cards, nil
}

func (s *Service) Featured(ctx context.Context) ([]view.ProductCard, error) {
	items, err := s.catalog.ListProducts(ctx, "", shopapi.ProductFilter{})
	if err != nil {
		return nil, err
	}
	cards := make([]view.ProductCard, 0, 8)
	for _, p := range items {
		if !p.Featured {
			continue
		}
		cards = append(cards, s.card(p))
		if len(cards) == 8 {
			break
		}
	}
	return cards, nil
}

func (s *Service) Detail(ctx context.Context, id string) (view.ProductDetail, error) {
	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return view.ProductDetail{}, err
	}

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	sizes := make([]view.ProductSize, 0, len(p.Sizes))
	for _, sz := range p.Sizes {
		sizes = append(sizes, view.ProductSize{Size: sz.Size, Stock: sz.Stock})
	}

	return view.ProductDetail{
		ID:          p.ID,
		Slug:        slug.FromName(p.Name),
		Name:        p.Name,
		Description: p.Description,
		Images:      images,
		PriceCents:  p.PriceCents,
		Price:       view.MoneyFromCents(p.PriceCents, s.currency),
		Category:    p.Category.Name,
		Sizes:       sizes,
		Active:      p.Active,
		Featured:    p.Featured,
	}, nil
}

// InStock reports whether the product has stock for the given size.
func (s *Service) InStock(ctx context.Context, id, size string) (bool, error) {
	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return false, err
	}
	for _, sz := range p.Sizes {
		if sz.Size == size {
			return sz.Stock > 0, nil
		}
	}
	return false, nil
}

func (s *Service) card(p shopapi.Product) view.ProductCard {
	imageURL := ""
	if len(p.Images) > 0 {
		imageURL = p.Images[0].URL
	}
	return view.ProductCard{
		ID:         p.ID,
		Slug:       slug.FromName(p.Name),
		Name:       p.Name,
		ImageURL:   imageURL,
		PriceCents: p.PriceCents,
		Price:      view.MoneyFromCents(p.PriceCents, s.currency),
		Category:   p.Category.Name,
		Featured:   p.Featured,
	}
}
