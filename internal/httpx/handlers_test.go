package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/payments"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
	"github.com/ariefcatur/go-payment-connector.git/internal/tax"
)

type fakeSettings struct {
	settings platform.Settings
	err      error
}

func (f *fakeSettings) GetAppSettings(ctx context.Context, appID string) (platform.Settings, error) {
	return f.settings, f.err
}

type fakeProcessor struct {
	order       dr.OrderResponse
	getErr      error
	fulfillResp dr.FulfillmentResponse
	refundResp  dr.RefundResponse
}

func (f *fakeProcessor) GetOrdersByUpstreamID(ctx context.Context, token, upstreamID string) (*dr.OrdersResponse, error) {
	return &dr.OrdersResponse{}, nil
}

func (f *fakeProcessor) UpdateCheckoutWithUpstreamID(ctx context.Context, token, checkoutID, upstreamID string) (*dr.CheckoutResponse, error) {
	return &dr.CheckoutResponse{ID: checkoutID}, nil
}

func (f *fakeProcessor) CreateOrder(ctx context.Context, token, checkoutID string) (*dr.OrderResponse, int, error) {
	return &f.order, http.StatusCreated, nil
}

func (f *fakeProcessor) GetOrderByID(ctx context.Context, token, orderID string) (*dr.OrderResponse, error) {
	return &f.order, f.getErr
}

func (f *fakeProcessor) RefundOrder(ctx context.Context, token string, payload dr.RefundPayload) (*dr.RefundResponse, error) {
	return &f.refundResp, nil
}

func (f *fakeProcessor) FulfillOrCancelOrder(ctx context.Context, token string, payload dr.FulfillmentPayload) (*dr.FulfillmentResponse, error) {
	return &f.fulfillResp, nil
}

type fakeCheckoutGateway struct {
	checkout  dr.CheckoutResponse
	updateErr error
}

func (f *fakeCheckoutGateway) CreateCheckout(ctx context.Context, token string, payload dr.CheckoutPayload) (*dr.CheckoutResponse, error) {
	return &f.checkout, nil
}

func (f *fakeCheckoutGateway) UpdateCheckoutWithSource(ctx context.Context, token, checkoutID, sourceID string) (*dr.CheckoutResponse, error) {
	return &f.checkout, f.updateErr
}

type fakeFormReader struct {
	form *platform.OrderForm
	err  error
}

func (f *fakeFormReader) GetOrderForm(ctx context.Context, orderFormID string, settings platform.Settings) (*platform.OrderForm, error) {
	return f.form, f.err
}

func paymentsRouter(t *testing.T, settings SettingsLoader, gw payments.ProcessorGateway) *httptest.Server {
	t.Helper()
	h := &PaymentsHandler{
		Payments: &payments.Service{Gateway: gw, Log: zap.NewNop()},
		Settings: settings,
		AppID:    platform.AppID,
		Log:      zap.NewNop(),
	}
	r := NewRouter()
	h.Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestPaymentMethods(t *testing.T) {
	srv := paymentsRouter(t, &fakeSettings{}, &fakeProcessor{})

	resp, err := http.Get(srv.URL + "/_v/payment-methods")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out payments.PaymentMethodsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"DigitalRiver"}, out.PaymentMethods)
}

func TestAuthorizeSettingsFailureStillDecides(t *testing.T) {
	srv := paymentsRouter(t, &fakeSettings{err: errors.New("store unreachable")}, &fakeProcessor{})

	resp, body := postJSON(t, srv.URL+"/_v/authorizations", `{"paymentId":"pay-1","orderId":"ord-1"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pay-1", body["paymentId"])
	assert.Equal(t, "denied", body["status"])
}

func TestSettleEndpoint(t *testing.T) {
	gw := &fakeProcessor{
		order:       dr.OrderResponse{ID: "dr-ord-1", Items: []dr.OrderItem{{ID: "it-1", Quantity: 1}}},
		fulfillResp: dr.FulfillmentResponse{ID: "ful-1"},
	}
	srv := paymentsRouter(t, &fakeSettings{}, gw)

	resp, body := postJSON(t, srv.URL+"/_v/settlements", `{"paymentId":"pay-1","tid":"dr-ord-1","value":10}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ful-1", body["settleId"])
	assert.Equal(t, 10.0, body["value"])
}

func TestSettleLookupFailureIs500(t *testing.T) {
	srv := paymentsRouter(t, &fakeSettings{}, &fakeProcessor{getErr: errors.New("not found")})

	resp, _ := postJSON(t, srv.URL+"/_v/settlements", `{"paymentId":"pay-1","tid":"missing"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestInboundEchoesPayload(t *testing.T) {
	srv := paymentsRouter(t, &fakeSettings{}, &fakeProcessor{})

	resp, body := postJSON(t, srv.URL+"/_v/inbound",
		`{"paymentId":"pay-1","requestId":"req-1","action":"ping"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pay-1", body["paymentId"])
	assert.Equal(t, "req-1", body["requestId"])

	data, ok := body["responseData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/json", data["contentType"])
	assert.JSONEq(t, `{"action":"ping"}`, data["content"].(string))
}

func checkoutRouter(t *testing.T, h *CheckoutHandler) *httptest.Server {
	t.Helper()
	if h.Log == nil {
		h.Log = zap.NewNop()
	}
	r := NewRouter()
	h.Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestCreateCheckoutRequiresAppCredentials(t *testing.T) {
	srv := checkoutRouter(t, &CheckoutHandler{
		Settings: &fakeSettings{}, // no app key/token
		Platform: &fakeFormReader{},
		Gateway:  &fakeCheckoutGateway{},
	})

	resp, body := postJSON(t, srv.URL+"/_v/checkout", `{"orderFormId":"of-1"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing app key and token", body["error"])
}

func TestCreateCheckoutReturnsLinkage(t *testing.T) {
	srv := checkoutRouter(t, &CheckoutHandler{
		Settings: &fakeSettings{settings: platform.Settings{AppKey: "k", AppToken: "t"}},
		Platform: &fakeFormReader{form: &platform.OrderForm{ID: "of-1"}},
		Gateway:  &fakeCheckoutGateway{checkout: dr.CheckoutResponse{ID: "chk-1", PaymentSessionID: "ps-1"}},
	})

	resp, body := postJSON(t, srv.URL+"/_v/checkout", `{"orderFormId":"of-1"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "chk-1", body["checkoutId"])
	assert.Equal(t, "ps-1", body["paymentSessionId"])
}

func TestUpdateCheckoutValidation(t *testing.T) {
	srv := checkoutRouter(t, &CheckoutHandler{
		Settings: &fakeSettings{},
		Gateway:  &fakeCheckoutGateway{},
	})

	for _, body := range []string{`{}`, `{"checkoutId":"chk-1"}`, `{"sourceId":"src-1"}`} {
		resp, out := postJSON(t, srv.URL+"/_v/checkout/update", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Checkout ID and Source ID must be provided", out["error"])
	}
}

func TestOrderTaxUnauthorized(t *testing.T) {
	srv := checkoutRouter(t, &CheckoutHandler{
		Settings: &fakeSettings{settings: platform.Settings{DigitalRiverToken: "secret"}},
		Tax:      &tax.Service{Platform: &taxPlatformStub{}, Gateway: &fakeCheckoutGateway{}},
	})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/_v/tax/order-tax",
		strings.NewReader(`{"data":{"orderFormId":"of-1"}}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "wrong")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

type taxPlatformStub struct{}

func (taxPlatformStub) GetOrderForm(ctx context.Context, orderFormID string, settings platform.Settings) (*platform.OrderForm, error) {
	return &platform.OrderForm{}, nil
}

func (taxPlatformStub) GetDockByID(ctx context.Context, dockID string) (*platform.Dock, error) {
	return nil, errors.New("unused")
}

func (taxPlatformStub) SetCheckoutCustomFields(ctx context.Context, orderFormID, checkoutID, paymentSessionID string) error {
	return nil
}

func TestCountryCode(t *testing.T) {
	srv := checkoutRouter(t, &CheckoutHandler{Settings: &fakeSettings{}})

	resp, err := http.Get(srv.URL + "/_v/country/USA")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "US", out["code"])

	resp2, err := http.Get(srv.URL + "/_v/country/US")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}
