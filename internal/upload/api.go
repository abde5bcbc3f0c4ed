package upload

import (
	"context"
	"io"

	"remeralab.com/app/internal/shopapi"
)

// API uploads through the shop API's custom-design endpoint. This is the
// default driver: the remote service owns durable image storage.
type API struct {
	Client *shopapi.Client
}

func NewAPI(client *shopapi.Client) *API {
	return &API{Client: client}
}

func (a *API) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	url, err := a.Client.UploadDesign(ctx, in.Filename, r)
	if err != nil {
		return PutResult{}, err
	}
	// The remote service keys uploads by URL; there is no separate key.
	return PutResult{Key: url, URL: url}, nil
}

// Delete is not offered by the upload endpoint; uploads are garbage
// collected remotely.
func (a *API) Delete(ctx context.Context, key string) error {
	_ = ctx
	_ = key
	return nil
}

func (a *API) String() string { return "api" }
