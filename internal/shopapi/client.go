// Package shopapi is the typed client for the remote shop API. Catalog,
// categories, orders and auth all live behind that service; this app never
// persists any of it locally.
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"remeralab.com/app/internal/shared/apperr"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Message string `json:"message"`
}

// do sends a JSON request and decodes a JSON response into out (out may be
// nil). token is the bearer token for authenticated endpoints, "" otherwise.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("shopapi: encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, out)
}

type filePart struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// doMultipart posts file parts (plus optional form fields) as multipart
// form data. The upload endpoints expect image parts under "images".
func (c *Client) doMultipart(ctx context.Context, path, token string, files []filePart, fields map[string]string, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return apperr.UnavailableErr("The shop service is unreachable.", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return apperr.UnavailableErr("The shop service is unreachable.", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return statusError(res.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperr.UnavailableErr("The shop service returned an unexpected response.", err)
		}
	}
	return nil
}

func statusError(status int, raw []byte) error {
	msg := ""
	var ae apiError
	if json.Unmarshal(raw, &ae) == nil {
		msg = strings.TrimSpace(ae.Message)
	}

	switch {
	case status == http.StatusBadRequest:
		if msg == "" {
			msg = "Invalid request."
		}
		return apperr.InvalidErr(msg, nil)
	case status == http.StatusUnauthorized:
		if msg == "" {
			msg = "Please sign in."
		}
		return apperr.UnauthorizedErr(msg)
	case status == http.StatusForbidden:
		if msg == "" {
			msg = "You are not allowed to do that."
		}
		return apperr.ForbiddenErr(msg)
	case status == http.StatusNotFound:
		if msg == "" {
			msg = "Not found."
		}
		return apperr.NotFoundErr(msg)
	case status == http.StatusConflict:
		if msg == "" {
			msg = "Conflict."
		}
		return apperr.ConflictErr(msg)
	default:
		return apperr.UnavailableErr("The shop service failed.", fmt.Errorf("shopapi: status %d: %s", status, msg))
	}
}
