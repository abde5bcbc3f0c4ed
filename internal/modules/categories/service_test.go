package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remeralab.com/app/internal/shopapi"
)

type fakeGrouper struct {
	groups []shopapi.CategoryGroup
}

func (f *fakeGrouper) GroupedCategories(context.Context) ([]shopapi.CategoryGroup, error) {
	return f.groups, nil
}

func TestNav_SkipsInactiveAndEmptyGroups(t *testing.T) {
	svc := NewService(&fakeGrouper{groups: []shopapi.CategoryGroup{
		{
			Parent: "Ropa",
			Categories: []shopapi.Category{
				{ID: "c1", Name: "Remeras", Active: true},
				{ID: "c2", Name: "Retired", Active: false},
			},
		},
		{
			Parent:     "Vacia",
			Categories: []shopapi.Category{{ID: "c3", Name: "Gone", Active: false}},
		},
	}})

	nav, err := svc.Nav(context.Background())
	require.NoError(t, err)

	require.Len(t, nav, 1)
	assert.Equal(t, "Ropa", nav[0].Parent)
	require.Len(t, nav[0].Children, 1)
	assert.Equal(t, "Remeras", nav[0].Children[0].Name)
}
