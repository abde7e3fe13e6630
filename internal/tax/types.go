package tax

// Tax-hub wire contract. Monetary values arrive already in major units,
// unlike the order form.

type RequestItem struct {
	ID              string  `json:"id"`
	SKU             string  `json:"sku"`
	EAN             string  `json:"ean,omitempty"`
	UnitMultiplier  float64 `json:"unitMultiplier,omitempty"`
	MeasurementUnit string  `json:"measurementUnit,omitempty"`
	TargetPrice     float64 `json:"targetPrice,omitempty"`
	ItemPrice       float64 `json:"itemPrice"`
	Quantity        int     `json:"quantity"`
	DiscountPrice   float64 `json:"discountPrice,omitempty"`
	DockID          string  `json:"dockId"`
	FreightPrice    float64 `json:"freightPrice,omitempty"`
}

type ClientData struct {
	Email             string `json:"email"`
	Document          string `json:"document,omitempty"`
	CorporateDocument string `json:"corporateDocument,omitempty"`
}

type ShippingDestination struct {
	Country      string `json:"country"` // 3-letter code
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Street       string `json:"street"`
	PostalCode   string `json:"postalCode"`
}

type Total struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Value float64 `json:"value"`
}

type Request struct {
	OrderFormID         string               `json:"orderFormId"`
	SalesChannel        string               `json:"salesChannel,omitempty"`
	Items               []RequestItem        `json:"items"`
	ClientEmail         string               `json:"clientEmail,omitempty"`
	ClientData          *ClientData          `json:"clientData"`
	ShippingDestination *ShippingDestination `json:"shippingDestination"`
	Totals              []Total              `json:"totals"`
}

type TaxLine struct {
	Name        string  `json:"name"`
	Rate        float64 `json:"rate,omitempty"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
}

type ItemTaxes struct {
	ID    string    `json:"id"`
	Taxes []TaxLine `json:"taxes"`
}

type Hook struct {
	Major int    `json:"major"`
	URL   string `json:"url"`
}

type Response struct {
	ItemTaxResponse []ItemTaxes `json:"itemTaxResponse"`
	Hooks           []Hook      `json:"hooks"`
}
