// Package checkout assembles Digital River checkout payloads from Platform
// order-form and logistics data.
package checkout

import (
	"strings"

	"github.com/ariefcatur/go-payment-connector.git/internal/apperr"
	"github.com/ariefcatur/go-payment-connector.git/internal/country"
	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

// ApplicationID identifies the integration on every checkout.
const ApplicationID = "VTEX"

// FullName composes the client's name; populated only when both parts are
// present.
func FullName(p *platform.ClientProfile) string {
	if p == nil || p.FirstName == "" || p.LastName == "" {
		return ""
	}
	return p.FirstName + " " + p.LastName
}

func shippingAddress(form *platform.OrderForm, country2 string) dr.Address {
	var a platform.ShippingAddress
	if form.ShippingData != nil && form.ShippingData.Address != nil {
		a = *form.ShippingData.Address
	}
	street := a.Street
	if street == "" {
		street = "Unknown"
	}
	city := a.City
	if city == "" {
		city = "Unknown"
	}
	return dr.Address{
		Line1:      street,
		Line2:      a.Complement,
		City:       city,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    country2,
	}
}

// BuildFromOrderForm produces a tax-inclusive checkout payload for the
// storefront checkout flow.
func BuildFromOrderForm(form *platform.OrderForm, browserIP string) dr.CheckoutPayload {
	var country2 string
	if form.ShippingData != nil && form.ShippingData.Address != nil {
		country2 = country.ToAlpha2(form.ShippingData.Address.Country)
	}

	locale := country.DefaultLocale
	if form.ClientPreferencesData != nil && form.ClientPreferencesData.Locale != "" {
		locale = strings.ReplaceAll(form.ClientPreferencesData.Locale, "-", "_")
	}

	currency := "USD"
	if form.StorePreferencesData != nil && form.StorePreferencesData.CurrencyCode != "" {
		currency = form.StorePreferencesData.CurrencyCode
	}

	var email, phone string
	if form.ClientProfileData != nil {
		email = form.ClientProfileData.Email
		phone = form.ClientProfileData.Phone
	}

	items := make([]dr.CheckoutItem, 0, len(form.Items))
	for _, item := range form.Items {
		items = append(items, TranslateOrderFormItem(item))
	}

	addr := shippingAddress(form, country2)

	return dr.CheckoutPayload{
		ApplicationID: ApplicationID,
		Currency:      currency,
		TaxInclusive:  true,
		Email:         email,
		Locale:        locale,
		BrowserIP:     browserIP,
		ShipFrom:      &dr.ShipFrom{Address: addr},
		ShipTo: dr.ShipTo{
			Name:    FullName(form.ClientProfileData),
			Phone:   phone,
			Address: addr,
		},
		Items: items,
		ShippingChoice: &dr.ShippingChoice{
			Amount: MinorToMajor(form.ShippingTotal()),
		},
	}
}

// DockShipFrom resolves a dock into a ship-from address, failing with the
// dock-misconfiguration error when any required field is missing. Checkout
// construction must abort entirely on an unusable dock.
func DockShipFrom(dock *platform.Dock) (*dr.ShipFrom, error) {
	if dock == nil || dock.Address == nil ||
		dock.Address.Street == "" ||
		dock.Address.City == "" ||
		dock.Address.State == "" ||
		dock.Address.PostalCode == "" ||
		dock.Address.Country == nil || dock.Address.Country.Acronym == "" {
		return nil, apperr.ErrDockAddressMisconfiguration
	}

	a := dock.Address
	line1 := a.Street
	if a.Number != "" {
		line1 = a.Number + " " + a.Street
	}

	return &dr.ShipFrom{Address: dr.Address{
		Line1:      line1,
		Line2:      a.Complement,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    country.ToAlpha2(a.Country.Acronym),
	}}, nil
}
