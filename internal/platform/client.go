// Package platform holds the clients for the Platform's order-form, order,
// logistics and app-settings APIs, plus the per-tenant settings type the
// rest of the connector is parameterized on.
package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

func New(baseURL, authToken string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(4 * time.Second).
			SetRetryCount(2).
			SetHeader("Content-Type", "application/json").
			SetHeader("VtexIdclientAutCookie", authToken),
	}
}

func check(resp *resty.Response, err error, what string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: unexpected status %d", what, resp.StatusCode())
	}
	return nil
}

// GetAppSettings loads the tenant settings for the given app.
func (c *Client) GetAppSettings(ctx context.Context, appID string) (Settings, error) {
	var out Settings
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/api/apps/%s/settings", appID))
	if err := check(resp, err, "get app settings"); err != nil {
		return Settings{}, err
	}
	return out, nil
}

func (c *Client) GetOrderForm(ctx context.Context, orderFormID string, settings Settings) (*OrderForm, error) {
	out := &OrderForm{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-VTEX-API-AppKey", settings.AppKey).
		SetHeader("X-VTEX-API-AppToken", settings.AppToken).
		SetQueryParam("disableAutoCompletion", "true").
		SetResult(out).
		Get("/api/checkout/pub/orderForm/" + orderFormID)
	if err := check(resp, err, "get order form"); err != nil {
		return nil, err
	}
	return out, nil
}

// SetCheckoutCustomFields stores the checkout linkage on the order form so a
// later authorization can find it.
func (c *Client) SetCheckoutCustomFields(ctx context.Context, orderFormID, checkoutID, paymentSessionID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"checkoutId":       checkoutID,
			"paymentSessionId": paymentSessionID,
		}).
		Put(fmt.Sprintf("/api/checkout/pub/orderForm/%s/customData/%s", orderFormID, AppID))
	return check(resp, err, "set order form custom fields")
}

// GetOrder reads an OMS order. originatingAccount, when known, is passed as
// the `an` query param so cross-account orders resolve.
func (c *Client) GetOrder(ctx context.Context, orderID, originatingAccount string, settings Settings) (*Order, error) {
	out := &Order{}
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-VTEX-API-AppKey", settings.AppKey).
		SetHeader("X-VTEX-API-AppToken", settings.AppToken).
		SetResult(out)
	if originatingAccount != "" {
		req.SetQueryParam("an", originatingAccount)
	}
	resp, err := req.Get("/api/oms/pvt/orders/" + orderID)
	if err := check(resp, err, "get order"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDockByID(ctx context.Context, dockID string) (*Dock, error) {
	out := &Dock{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		Get("/api/logistics/pvt/configuration/docks/" + dockID)
	if err := check(resp, err, "get dock"); err != nil {
		return nil, err
	}
	return out, nil
}
