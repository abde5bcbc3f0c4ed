package categories

import (
	"context"

	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/pkg/view"
)

type Grouper interface {
	GroupedCategories(ctx context.Context) ([]shopapi.CategoryGroup, error)
}

type Service struct {
	api Grouper
}

func NewService(api Grouper) *Service {
	return &Service{api: api}
}

// Nav maps the grouped category tree into the storefront navigation,
// skipping inactive entries.
func (s *Service) Nav(ctx context.Context) ([]view.CategoryNav, error) {
	groups, err := s.api.GroupedCategories(ctx)
	if err != nil {
		return nil, err
	}

	nav := make([]view.CategoryNav, 0, len(groups))
	for _, g := range groups {
		children := make([]view.CategoryLink, 0, len(g.Categories))
		for _, cat := range g.Categories {
			if !cat.Active {
				continue
			}
			children = append(children, view.CategoryLink{
				ID:       cat.ID,
				Name:     cat.Name,
				ImageURL: cat.ImageURL,
			})
		}
		if len(children) == 0 {
			continue
		}
		nav = append(nav, view.CategoryNav{Parent: g.Parent, Children: children})
	}
	return nav, nil
}
