package tax

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-payment-connector.git/internal/apperr"
	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

type fakePlatform struct {
	form    *platform.OrderForm
	formErr error
	dock    *platform.Dock
	dockErr error

	setErr         error
	setCheckoutID  string
	setSessionID   string
	setOrderFormID string
}

func (f *fakePlatform) GetOrderForm(ctx context.Context, orderFormID string, settings platform.Settings) (*platform.OrderForm, error) {
	return f.form, f.formErr
}

func (f *fakePlatform) GetDockByID(ctx context.Context, dockID string) (*platform.Dock, error) {
	return f.dock, f.dockErr
}

func (f *fakePlatform) SetCheckoutCustomFields(ctx context.Context, orderFormID, checkoutID, paymentSessionID string) error {
	f.setOrderFormID = orderFormID
	f.setCheckoutID = checkoutID
	f.setSessionID = paymentSessionID
	return f.setErr
}

type fakeCreator struct {
	resp    *dr.CheckoutResponse
	err     error
	called  bool
	payload dr.CheckoutPayload
}

func (f *fakeCreator) CreateCheckout(ctx context.Context, token string, payload dr.CheckoutPayload) (*dr.CheckoutResponse, error) {
	f.called = true
	f.payload = payload
	return f.resp, f.err
}

var settings = platform.Settings{DigitalRiverToken: "secret-token"}

func validDock() *platform.Dock {
	return &platform.Dock{Address: &platform.DockAddress{
		Street: "Warehouse Rd", City: "Chicago", State: "IL",
		PostalCode: "60601", Country: &platform.DockCountry{Acronym: "USA"},
	}}
}

func quoteRequest() Request {
	return Request{
		OrderFormID: "of-1",
		Items: []RequestItem{
			{ID: "0", SKU: "sku-1", ItemPrice: 25.00, Quantity: 1, DockID: "dock-1"},
			{ID: "1", SKU: "sku-2", ItemPrice: 10.00, Quantity: 2, DockID: "dock-2", DiscountPrice: 1.50},
		},
		ClientData:          &ClientData{Email: "jane@example.com"},
		ShippingDestination: &ShippingDestination{Country: "USA", City: "Chicago", State: "IL", Street: "10 Main", PostalCode: "60601"},
		Totals:              []Total{{ID: "Shipping", Value: 5.00}},
	}
}

func quoteCheckout() *dr.CheckoutResponse {
	return &dr.CheckoutResponse{
		ID:               "chk-1",
		PaymentSessionID: "ps-1",
		ShippingChoice:   dr.ShippingChoiceResponse{TaxAmount: 1.00},
		Items: []dr.OrderItem{
			{SkuID: "sku-1", Metadata: map[string]string{"taxHubRequestId": "0"}, Tax: dr.Tax{Rate: 0.07, Amount: 1.75}},
			{SkuID: "sku-2", Metadata: map[string]string{"taxHubRequestId": "1"}, Tax: dr.Tax{Rate: 0.07, Amount: 1.40}},
			{SkuID: "sku-3", Metadata: map[string]string{"taxHubRequestId": "2"}},
		},
	}
}

func TestQuoteRejectsBadAuthorization(t *testing.T) {
	svc := &Service{Platform: &fakePlatform{}, Gateway: &fakeCreator{}}

	for _, auth := range []string{"", "wrong-token"} {
		_, err := svc.Quote(context.Background(), settings, auth, quoteRequest())
		var authErr *apperr.AuthenticationError
		assert.ErrorAs(t, err, &authErr)
	}
}

func TestQuoteRequiresOrderFormID(t *testing.T) {
	svc := &Service{Platform: &fakePlatform{}, Gateway: &fakeCreator{}}

	req := quoteRequest()
	req.OrderFormID = ""
	_, err := svc.Quote(context.Background(), settings, "secret-token", req)

	var inputErr *apperr.UserInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestQuoteDockMisconfigurationAborts(t *testing.T) {
	dock := validDock()
	dock.Address.PostalCode = ""
	creator := &fakeCreator{}
	svc := &Service{
		Platform: &fakePlatform{form: &platform.OrderForm{}, dock: dock},
		Gateway:  creator,
	}

	_, err := svc.Quote(context.Background(), settings, "secret-token", quoteRequest())

	assert.ErrorIs(t, err, apperr.ErrDockAddressMisconfiguration)
	// no Processor call is made on a misconfigured dock
	assert.False(t, creator.called)
}

func TestQuoteBuildsPreTaxCheckoutAndStoresLinkage(t *testing.T) {
	pf := &fakePlatform{
		form: &platform.OrderForm{
			ClientProfileData:    &platform.ClientProfile{FirstName: "Jane", LastName: "Doe", Phone: "555"},
			StorePreferencesData: &platform.StorePreferences{CurrencyCode: "USD"},
		},
		dock: validDock(),
	}
	creator := &fakeCreator{resp: quoteCheckout()}
	svc := &Service{Platform: pf, Gateway: creator}

	resp, err := svc.Quote(context.Background(), settings, "secret-token", quoteRequest())
	require.NoError(t, err)

	assert.False(t, creator.payload.TaxInclusive)
	assert.Equal(t, "jane@example.com", creator.payload.Email)
	assert.Equal(t, "Jane Doe", creator.payload.ShipTo.Name)
	require.Len(t, creator.payload.Items, 2)
	assert.Equal(t, 25.00, creator.payload.Items[0].Price)
	assert.Equal(t, map[string]string{"taxHubRequestId": "0"}, creator.payload.Items[0].Metadata)
	require.NotNil(t, creator.payload.Items[1].Discount)
	assert.Equal(t, 1.50, creator.payload.Items[1].Discount.AmountOff)
	require.NotNil(t, creator.payload.ShippingChoice)
	assert.Equal(t, 5.00, creator.payload.ShippingChoice.Amount)
	assert.Equal(t, "US", creator.payload.ShipFrom.Address.Country)

	// the authorize flow depends on this linkage
	assert.Equal(t, "of-1", pf.setOrderFormID)
	assert.Equal(t, "chk-1", pf.setCheckoutID)
	assert.Equal(t, "ps-1", pf.setSessionID)

	require.Len(t, resp.ItemTaxResponse, 3)
	assert.NotNil(t, resp.Hooks)
}

func TestQuoteCustomFieldWriteFailureFails(t *testing.T) {
	pf := &fakePlatform{form: &platform.OrderForm{}, dock: validDock(), setErr: errors.New("conflict")}
	svc := &Service{Platform: pf, Gateway: &fakeCreator{resp: quoteCheckout()}}

	_, err := svc.Quote(context.Background(), settings, "secret-token", quoteRequest())

	var resolverErr *apperr.ResolverError
	require.ErrorAs(t, err, &resolverErr)
	assert.Contains(t, resolverErr.Message, "OrderForm update failed")
}

func TestDecomposeShippingTaxFloorDistribution(t *testing.T) {
	out := Decompose(quoteCheckout())
	require.Len(t, out, 3)

	// 1.00 / 3 floored to 2 decimals = 0.33 per item; 0.01 is dropped.
	for _, item := range out {
		var shipping *TaxLine
		for i := range item.Taxes {
			if item.Taxes[i].Name == "SHIPPING TAX" {
				shipping = &item.Taxes[i]
			}
		}
		require.NotNil(t, shipping, "item %s", item.ID)
		assert.Equal(t, 0.33, shipping.Value)
	}
}

func TestDecomposeEmitsOnlyPositiveComponents(t *testing.T) {
	quote := &dr.CheckoutResponse{
		ShippingChoice: dr.ShippingChoiceResponse{TaxAmount: 0},
		Items: []dr.OrderItem{{
			SkuID:       "sku-1",
			Tax:         dr.Tax{Rate: 0.07, Amount: 2.10},
			ImporterTax: dr.ImporterTax{Amount: 0.50},
			Duties:      dr.Duties{Amount: 0},
			Fees:        dr.Fees{Amount: 1.00, TaxAmount: 0.08},
		}},
	}

	out := Decompose(quote)
	require.Len(t, out, 1)

	names := make([]string, 0, len(out[0].Taxes))
	for _, l := range out[0].Taxes {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"TAX", "IMPORTER TAX", "FEES", "FEE TAX"}, names)
	assert.Equal(t, 0.07, out[0].Taxes[0].Rate)
}

func TestDecomposeFeeTaxRequiresFees(t *testing.T) {
	quote := &dr.CheckoutResponse{
		Items: []dr.OrderItem{{
			SkuID: "sku-1",
			Fees:  dr.Fees{Amount: 0, TaxAmount: 0.08},
		}},
	}

	out := Decompose(quote)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Taxes)
}

func TestDecomposeKeyFallsBackToSkuThenIndex(t *testing.T) {
	quote := &dr.CheckoutResponse{
		Items: []dr.OrderItem{
			{Metadata: map[string]string{"taxHubRequestId": "corr-1"}},
			{SkuID: "sku-9"},
			{},
		},
	}

	out := Decompose(quote)
	require.Len(t, out, 3)
	assert.Equal(t, "corr-1", out[0].ID)
	assert.Equal(t, "sku-9", out[1].ID)
	assert.Equal(t, "2", out[2].ID)
}
