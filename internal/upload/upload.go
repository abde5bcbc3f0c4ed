// Package upload abstracts where rasterized designs and admin images end
// up: the shop API's upload endpoint, an S3 bucket, or local disk in dev.
package upload

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Uploader interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
