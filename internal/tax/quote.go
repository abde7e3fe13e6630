// Package tax implements the Platform's tax-hub webhook: it builds a
// disposable Digital River checkout purely to obtain a tax quote, stores
// the checkout linkage on the order form, and decomposes the quote into
// per-item tax lines.
package tax

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/apperr"
	"github.com/ariefcatur/go-payment-connector.git/internal/checkout"
	"github.com/ariefcatur/go-payment-connector.git/internal/country"
	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

// metadataRequestID carries the tax-hub correlation id through the
// Processor and back.
const metadataRequestID = "taxHubRequestId"

// PlatformAPI is the slice of the platform client the quote flow uses.
type PlatformAPI interface {
	GetOrderForm(ctx context.Context, orderFormID string, settings platform.Settings) (*platform.OrderForm, error)
	GetDockByID(ctx context.Context, dockID string) (*platform.Dock, error)
	SetCheckoutCustomFields(ctx context.Context, orderFormID, checkoutID, paymentSessionID string) error
}

// CheckoutCreator is the slice of the Digital River client the quote flow
// uses.
type CheckoutCreator interface {
	CreateCheckout(ctx context.Context, token string, payload dr.CheckoutPayload) (*dr.CheckoutResponse, error)
}

type Service struct {
	Platform PlatformAPI
	Gateway  CheckoutCreator
	Log      *zap.Logger
}

func (s *Service) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

// Quote authenticates the inbound webhook, builds a pre-tax checkout and
// returns the per-item tax breakdown. The created checkout id is written to
// the order form's custom fields; the authorization flow depends on it.
func (s *Service) Quote(ctx context.Context, settings platform.Settings, authorization string, req Request) (*Response, error) {
	if authorization == "" || authorization != settings.DigitalRiverToken {
		return nil, &apperr.AuthenticationError{Reason: "Unauthorized application!"}
	}
	if req.OrderFormID == "" {
		return nil, &apperr.UserInputError{Reason: "No orderForm ID provided"}
	}

	log := s.log().With(zap.String("orderFormId", req.OrderFormID))
	log.Info("tax quote request received", zap.Int("items", len(req.Items)))

	form, err := s.Platform.GetOrderForm(ctx, req.OrderFormID, settings)
	if err != nil {
		log.Error("get order form failed", zap.Error(err))
		return nil, apperr.NewResolverError(err, "orderForm not found")
	}

	var shippingCountry string
	if req.ShippingDestination != nil {
		shippingCountry = country.ToAlpha2(req.ShippingDestination.Country)
	}
	locale := country.Locale(shippingCountry)

	items := make([]dr.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		ci := dr.CheckoutItem{
			SkuID:    item.ID,
			Quantity: item.Quantity,
			Price:    item.ItemPrice,
			Metadata: map[string]string{metadataRequestID: item.ID},
		}
		if item.DiscountPrice > 0 {
			ci.Discount = &dr.Discount{AmountOff: item.DiscountPrice, Quantity: item.Quantity}
		}
		items = append(items, ci)
	}

	// One shared ship-from address resolved from the first item's dock.
	// Multi-warehouse orders get that single address.
	if len(req.Items) == 0 {
		return nil, &apperr.UserInputError{Reason: "No items provided"}
	}
	dock, err := s.Platform.GetDockByID(ctx, req.Items[0].DockID)
	if err != nil {
		log.Error("get dock failed", zap.String("dockId", req.Items[0].DockID), zap.Error(err))
		return nil, apperr.NewResolverError(err, "Dock lookup failed for dock %s", req.Items[0].DockID)
	}
	shipFrom, err := checkout.DockShipFrom(dock)
	if err != nil {
		log.Error("dock address misconfiguration", zap.String("dockId", req.Items[0].DockID))
		return nil, err
	}

	currency := "USD"
	if form.StorePreferencesData != nil && form.StorePreferencesData.CurrencyCode != "" {
		currency = form.StorePreferencesData.CurrencyCode
	}

	var email string
	if req.ClientData != nil {
		email = req.ClientData.Email
	}

	var shipToAddr dr.Address
	var phone string
	if form.ShippingData != nil && form.ShippingData.Address != nil {
		a := form.ShippingData.Address
		shipToAddr = dr.Address{
			Line1:      a.Street,
			Line2:      a.Complement,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    shippingCountry,
		}
	}
	if form.ClientProfileData != nil {
		phone = form.ClientProfileData.Phone
	}

	var shippingTotal float64
	for _, t := range req.Totals {
		if t.ID == "Shipping" {
			shippingTotal = t.Value
		}
	}

	payload := dr.CheckoutPayload{
		ApplicationID: checkout.ApplicationID,
		Currency:      currency,
		TaxInclusive:  false, // pre-tax quote
		Email:         email,
		ShipFrom:      shipFrom,
		ShipTo: dr.ShipTo{
			Name:    checkout.FullName(form.ClientProfileData),
			Phone:   phone,
			Address: shipToAddr,
		},
		Items:          items,
		ShippingChoice: &dr.ShippingChoice{Amount: shippingTotal},
		Locale:         locale,
	}

	quote, err := s.Gateway.CreateCheckout(ctx, settings.DigitalRiverToken, payload)
	if err != nil {
		log.Error("create checkout failed", zap.Error(err))
		return nil, apperr.NewResolverError(err, "Checkout creation failed")
	}
	log.Info("quote checkout created", zap.String("checkoutId", quote.ID))

	// The authorize flow later resolves this checkout through the order
	// form, so a custom-field write failure must fail the quote.
	if err := s.Platform.SetCheckoutCustomFields(ctx, req.OrderFormID, quote.ID, quote.PaymentSessionID); err != nil {
		log.Error("set custom fields failed", zap.String("checkoutId", quote.ID), zap.Error(err))
		return nil, apperr.NewResolverError(err, "OrderForm update failed")
	}

	return &Response{ItemTaxResponse: Decompose(quote), Hooks: []Hook{}}, nil
}

// Decompose turns a quoted checkout into per-item tax lines. Shipping tax
// is split evenly across items and floored to 2 decimals per item; the
// remainder is dropped, not reconciled.
func Decompose(quote *dr.CheckoutResponse) []ItemTaxes {
	var shippingTaxPerItem float64
	if quote.ShippingChoice.TaxAmount > 0 && len(quote.Items) > 0 {
		shippingTaxPerItem, _ = decimal.NewFromFloat(quote.ShippingChoice.TaxAmount).
			Div(decimal.NewFromInt(int64(len(quote.Items)))).
			Mul(decimal.NewFromInt(100)).
			Floor().
			Div(decimal.NewFromInt(100)).
			Float64()
	}

	out := make([]ItemTaxes, 0, len(quote.Items))
	for i, item := range quote.Items {
		var lines []TaxLine

		if item.Tax.Amount > 0 {
			lines = append(lines, TaxLine{Name: "TAX", Rate: item.Tax.Rate, Value: item.Tax.Amount})
		}
		if shippingTaxPerItem != 0 {
			lines = append(lines, TaxLine{Name: "SHIPPING TAX", Value: shippingTaxPerItem})
		}
		if item.ImporterTax.Amount > 0 {
			lines = append(lines, TaxLine{Name: "IMPORTER TAX", Value: item.ImporterTax.Amount})
		}
		if item.Duties.Amount > 0 {
			lines = append(lines, TaxLine{Name: "DUTIES", Value: item.Duties.Amount})
		}
		if item.Fees.Amount > 0 {
			lines = append(lines, TaxLine{Name: "FEES", Value: item.Fees.Amount})
			if item.Fees.TaxAmount > 0 {
				lines = append(lines, TaxLine{Name: "FEE TAX", Value: item.Fees.TaxAmount})
			}
		}

		id := item.Metadata[metadataRequestID]
		if id == "" {
			id = item.SkuID
		}
		if id == "" {
			id = strconv.Itoa(i)
		}
		out = append(out, ItemTaxes{ID: id, Taxes: lines})
	}
	return out
}
