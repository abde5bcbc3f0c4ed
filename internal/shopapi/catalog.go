package shopapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

type ProductFilter struct {
	CategoryID     string
	ParentCategory string
	Search         string
	Admin          bool // include inactive products (admin listings)
}

func (f ProductFilter) query() string {
	q := url.Values{}
	if f.CategoryID != "" {
		q.Set("category", f.CategoryID)
	}
	if f.ParentCategory != "" {
		q.Set("parentCategory", f.ParentCategory)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Admin {
		q.Set("admin", "true")
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) ListProducts(ctx context.Context, token string, f ProductFilter) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products"+f.query(), token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), "", nil, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/products", token, in, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// UpdateProduct sends a partial update; patch is marshalled as-is so
// callers can toggle single fields (active, featured) without a full input.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, patch any) error {
	return c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), token, patch, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) UploadProductImage(ctx context.Context, token, id, filename string, r io.Reader) error {
	files := []filePart{{Field: "images", Filename: filename, Reader: r}}
	return c.doMultipart(ctx, "/products/"+url.PathEscape(id)+"/images", token, files, nil, nil)
}

func (c *Client) DeleteProductImage(ctx context.Context, token, productID, imageID string) error {
	path := "/products/" + url.PathEscape(productID) + "/images/" + url.PathEscape(imageID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
