package shopapi

import (
	"context"
	"io"
)

type uploadResult struct {
	URL string `json:"url"`
}

// UploadDesign posts a rasterized design to the shop's upload endpoint and
// returns the durable URL it was stored under.
func (c *Client) UploadDesign(ctx context.Context, filename string, r io.Reader) (string, error) {
	files := []filePart{{Field: "images", Filename: filename, Reader: r}}
	var out uploadResult
	if err := c.doMultipart(ctx, "/products/upload-custom-design", "", files, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
