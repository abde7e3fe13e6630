// Package dr is the typed client for the Digital River API. One method per
// REST resource, bearer credential taken from per-tenant settings on every
// call. No retries and no response validation beyond deserialization live
// here; error classification belongs to the callers.
package dr

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

// apiError is the Processor's error envelope.
type apiError struct {
	Type   string `json:"type"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (e *apiError) message() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}
	return e.Type
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

func (c *Client) req(ctx context.Context, token string, out any) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(out).
		SetError(&apiError{})
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		if ae, ok := resp.Error().(*apiError); ok && ae != nil && (ae.Type != "" || len(ae.Errors) > 0) {
			return fmt.Errorf("digital river: %s (status %d)", ae.message(), resp.StatusCode())
		}
		return fmt.Errorf("digital river: unexpected status %d", resp.StatusCode())
	}
	return nil
}

func (c *Client) CreateCheckout(ctx context.Context, token string, payload CheckoutPayload) (*CheckoutResponse, error) {
	out := &CheckoutResponse{}
	resp, err := c.req(ctx, token, out).SetBody(payload).Post("/checkouts")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSource(ctx context.Context, token string, payload SourcePayload) (*SourceResponse, error) {
	out := &SourceResponse{}
	resp, err := c.req(ctx, token, out).SetBody(payload).Post("/sources")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateCheckoutWithSource(ctx context.Context, token, checkoutID, sourceID string) (*CheckoutResponse, error) {
	out := &CheckoutResponse{}
	resp, err := c.req(ctx, token, out).
		SetBody(map[string]string{"sourceId": sourceID}).
		Post("/checkouts/" + checkoutID)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateCheckoutWithUpstreamID(ctx context.Context, token, checkoutID, upstreamID string) (*CheckoutResponse, error) {
	out := &CheckoutResponse{}
	resp, err := c.req(ctx, token, out).
		SetBody(map[string]string{"upstreamId": upstreamID}).
		Post("/checkouts/" + checkoutID)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, token, checkoutID string) (*OrderResponse, int, error) {
	out := &OrderResponse{}
	resp, err := c.req(ctx, token, out).
		SetBody(OrderPayload{CheckoutID: checkoutID}).
		Post("/orders")
	if err := check(resp, err); err != nil {
		return nil, 0, err
	}
	return out, resp.StatusCode(), nil
}

func (c *Client) GetOrderByID(ctx context.Context, token, orderID string) (*OrderResponse, error) {
	out := &OrderResponse{}
	resp, err := c.req(ctx, token, out).Get("/orders/" + orderID)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrdersByUpstreamID(ctx context.Context, token, upstreamID string) (*OrdersResponse, error) {
	out := &OrdersResponse{}
	resp, err := c.req(ctx, token, out).
		SetQueryParam("upstreamIds", upstreamID).
		Get("/orders")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RefundOrder(ctx context.Context, token string, payload RefundPayload) (*RefundResponse, error) {
	out := &RefundResponse{}
	resp, err := c.req(ctx, token, out).SetBody(payload).Post("/refunds")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReturnOrder(ctx context.Context, token string, payload ReturnPayload) (*ReturnResponse, error) {
	out := &ReturnResponse{}
	resp, err := c.req(ctx, token, out).SetBody(payload).Post("/returns")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FulfillOrCancelOrder(ctx context.Context, token string, payload FulfillmentPayload) (*FulfillmentResponse, error) {
	out := &FulfillmentResponse{}
	resp, err := c.req(ctx, token, out).SetBody(payload).Post("/fulfillments")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateWebhook(ctx context.Context, token string, payload WebhookPayload) (*WebhookResponse, error) {
	out := &WebhookResponse{}
	resp, err := c.req(ctx, token, out).SetBody(payload).Post("/webhooks")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
