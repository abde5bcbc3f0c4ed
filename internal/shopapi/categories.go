package shopapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// GroupedCategories returns the public navigation tree (active categories
// grouped by parent).
func (c *Client) GroupedCategories(ctx context.Context) ([]CategoryGroup, error) {
	var out []CategoryGroup
	if err := c.do(ctx, http.MethodGet, "/categories/grouped", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCategories returns the flat admin listing, inactive ones included.
func (c *Client) ListCategories(ctx context.Context, token string) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/categories?admin=true", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, in CategoryInput) (Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPost, "/categories", token, in, &out); err != nil {
		return Category{}, err
	}
	return out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token, id string, patch any) error {
	return c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), token, patch, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) UploadCategoryImage(ctx context.Context, token, id, filename string, r io.Reader) error {
	files := []filePart{{Field: "images", Filename: filename, Reader: r}}
	return c.doMultipart(ctx, "/categories/"+url.PathEscape(id)+"/image", token, files, nil, nil)
}

func (c *Client) DeleteCategoryImage(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id)+"/image", token, nil, nil)
}
