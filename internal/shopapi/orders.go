package shopapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateOrder(ctx context.Context, token string, in CreateOrderInput) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, in, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/orders/myorders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), token, nil, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) CancelOrder(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/cancel", token, nil, nil)
}

// Admin endpoints.

func (c *Client) ListOrders(ctx context.Context, token, status string) ([]Order, error) {
	path := "/orders"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []Order
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ConfirmOrder(ctx context.Context, token, id, adminNotes string) error {
	body := map[string]string{"adminNotes": adminNotes}
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/confirm", token, body, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", token, body, nil)
}

func (c *Client) UpdateOrderPayment(ctx context.Context, token, id, paymentStatus string) error {
	body := map[string]string{"paymentStatus": paymentStatus}
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/payment", token, body, nil)
}
