package platform

// AppID is the custom-data app key under which the connector stores its
// checkout linkage on the order form.
const AppID = "digital-river"

// Settings is the per-tenant configuration fetched from the Platform's
// app-settings API once per request and threaded explicitly into every
// operation.
type Settings struct {
	DigitalRiverToken    string `json:"digitalRiverToken"`
	AppKey               string `json:"vtexAppKey"`
	AppToken             string `json:"vtexAppToken"`
	IsLive               bool   `json:"isLive"`
	EnableTaxCalculation bool   `json:"enableTaxCalculation"`
}

type ClientProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type ShippingAddress struct {
	Street     string `json:"street"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"` // 3-letter code
}

type ShippingData struct {
	Address *ShippingAddress `json:"address"`
}

type ClientPreferences struct {
	Locale string `json:"locale"`
}

type StorePreferences struct {
	CurrencyCode string `json:"currencyCode"`
}

// PriceTag is a per-item price adjustment. Discount tags are recognized by
// name; Value is in minor units unless IsPercentual is set.
type PriceTag struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	IsPercentual bool    `json:"isPercentual"`
}

type OrderFormItem struct {
	ID        string     `json:"id"`
	Quantity  int        `json:"quantity"`
	Price     int64      `json:"price"` // minor units
	PriceTags []PriceTag `json:"priceTags"`
}

type Totalizer struct {
	ID    string `json:"id"`
	Value int64  `json:"value"` // minor units
}

type OrderForm struct {
	ID                    string             `json:"orderFormId"`
	ClientProfileData     *ClientProfile     `json:"clientProfileData"`
	ShippingData          *ShippingData      `json:"shippingData"`
	ClientPreferencesData *ClientPreferences `json:"clientPreferencesData"`
	StorePreferencesData  *StorePreferences  `json:"storePreferencesData"`
	Items                 []OrderFormItem    `json:"items"`
	Totalizers            []Totalizer        `json:"totalizers"`
}

// ShippingTotal returns the Shipping totalizer value in minor units, 0 when
// absent.
func (f *OrderForm) ShippingTotal() int64 {
	for _, t := range f.Totalizers {
		if t.ID == "Shipping" {
			return t.Value
		}
	}
	return 0
}

type CustomApp struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

type CustomData struct {
	CustomApps []CustomApp `json:"customApps"`
}

// Order is the OMS order record. Only the custom-data bag matters to the
// connector; it carries the checkout linkage written during the tax flow.
type Order struct {
	OrderID    string      `json:"orderId"`
	CustomData *CustomData `json:"customData"`
}

// CheckoutID extracts the stored Digital River checkout id, "" when absent.
func (o *Order) CheckoutID() string {
	if o == nil || o.CustomData == nil {
		return ""
	}
	for _, app := range o.CustomData.CustomApps {
		if app.ID == AppID {
			return app.Fields["checkoutId"]
		}
	}
	return ""
}

type DockCountry struct {
	Acronym string `json:"acronym"` // 3-letter code
}

type DockAddress struct {
	Street     string       `json:"street"`
	Number     string       `json:"number"`
	Complement string       `json:"complement"`
	City       string       `json:"city"`
	State      string       `json:"state"`
	PostalCode string       `json:"postalCode"`
	Country    *DockCountry `json:"country"`
}

// Dock is a fulfillment warehouse used as a ship-from address.
type Dock struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Address *DockAddress `json:"address"`
}
