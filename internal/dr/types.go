package dr

// Wire types for the Digital River API. Amounts are major-unit decimals on
// the wire; conversion from the Platform's minor units happens in the
// checkout builder, not here.

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

type ShipFrom struct {
	Address Address `json:"address"`
}

type ShipTo struct {
	Address Address `json:"address"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
}

// Discount carries exactly one of PercentOff or AmountOff.
type Discount struct {
	AmountOff  float64 `json:"amountOff,omitempty"`
	PercentOff float64 `json:"percentOff,omitempty"`
	Quantity   int     `json:"quantity"`
}

type CheckoutItem struct {
	SkuID    string            `json:"skuId"`
	Quantity int               `json:"quantity"`
	Price    float64           `json:"price"`
	Discount *Discount         `json:"discount,omitempty"`
	ShipFrom *ShipFrom         `json:"shipFrom,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type ShippingChoice struct {
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	ServiceLevel string  `json:"serviceLevel"`
}

type CheckoutPayload struct {
	CustomerID     string            `json:"customerId,omitempty"`
	SourceID       string            `json:"sourceId,omitempty"`
	Currency       string            `json:"currency"`
	ApplicationID  string            `json:"applicationId"`
	TaxInclusive   bool              `json:"taxInclusive"`
	BrowserIP      string            `json:"browserIp,omitempty"`
	Email          string            `json:"email"`
	ShipFrom       *ShipFrom         `json:"shipFrom,omitempty"`
	ShipTo         ShipTo            `json:"shipTo"`
	Items          []CheckoutItem    `json:"items"`
	UpstreamID     string            `json:"upstreamId,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	ShippingChoice *ShippingChoice   `json:"shippingChoice"`
	Locale         string            `json:"locale"`
}

type Tax struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

type ImporterTax struct {
	Amount float64 `json:"amount"`
}

type Duties struct {
	Amount float64 `json:"amount"`
}

type Fees struct {
	Amount    float64 `json:"amount"`
	TaxAmount float64 `json:"taxAmount"`
}

type OrderItem struct {
	ID                      string            `json:"id"`
	SkuID                   string            `json:"skuId"`
	Amount                  float64           `json:"amount"`
	Quantity                int               `json:"quantity"`
	Tax                     Tax               `json:"tax"`
	ImporterTax             ImporterTax       `json:"importerTax"`
	Duties                  Duties            `json:"duties"`
	Fees                    Fees              `json:"fees"`
	AvailableToRefundAmount float64           `json:"availableToRefundAmount"`
	Metadata                map[string]string `json:"metadata,omitempty"`
}

type ShippingChoiceResponse struct {
	Amount       float64 `json:"amount"`
	TaxAmount    float64 `json:"taxAmount"`
	Description  string  `json:"description"`
	ServiceLevel string  `json:"serviceLevel"`
}

type CheckoutResponse struct {
	ID               string                 `json:"id"`
	CreatedTime      string                 `json:"createdTime"`
	Currency         string                 `json:"currency"`
	Email            string                 `json:"email"`
	SourceID         string                 `json:"sourceId,omitempty"`
	ShipTo           ShipTo                 `json:"shipTo"`
	ShipFrom         ShipFrom               `json:"shipFrom"`
	TotalAmount      float64                `json:"totalAmount"`
	Subtotal         float64                `json:"subtotal"`
	TotalFees        float64                `json:"totalFees"`
	TotalTax         float64                `json:"totalTax"`
	TotalImporterTax float64                `json:"totalImporterTax"`
	TotalDuty        float64                `json:"totalDuty"`
	TotalDiscount    float64                `json:"totalDiscount"`
	TotalShipping    float64                `json:"totalShipping"`
	Items            []OrderItem            `json:"items"`
	ShippingChoice   ShippingChoiceResponse `json:"shippingChoice"`
	UpstreamID       string                 `json:"upstreamId"`
	Locale           string                 `json:"locale"`
	ApplicationID    string                 `json:"applicationId"`
	PaymentSessionID string                 `json:"paymentSessionId"`
	LiveMode         bool                   `json:"liveMode"`
}

// Order states the connector knows how to map. The Processor may grow new
// states; unknown ones land in the undefined bucket.
const (
	OrderStateAccepted       = "accepted"
	OrderStateFailed         = "failed"
	OrderStateBlocked        = "blocked"
	OrderStatePaymentPending = "payment_pending"
	OrderStateInReview       = "in_review"
)

type Capture struct {
	ID             string  `json:"id"`
	CreatedTime    string  `json:"createdTime"`
	UpdatedTime    string  `json:"updatedTime"`
	Amount         float64 `json:"amount"`
	State          string  `json:"state"`
	FailureCode    string  `json:"failureCode"`
	FailureMessage string  `json:"failureMessage"`
}

type Charge struct {
	ID               string    `json:"id"`
	CreatedTime      string    `json:"createdTime"`
	Currency         string    `json:"currency"`
	Amount           float64   `json:"amount"`
	State            string    `json:"state"`
	SourceID         string    `json:"sourceId"`
	PaymentSessionID string    `json:"paymentSessionId"`
	Captured         bool      `json:"captured"`
	Captures         []Capture `json:"captures"`
	OrderID          string    `json:"orderId"`
}

type OrderResponse struct {
	ID               string                 `json:"id"`
	CreatedTime      string                 `json:"createdTime"`
	Currency         string                 `json:"currency"`
	Email            string                 `json:"email"`
	TotalTax         float64                `json:"totalTax"`
	TotalFees        float64                `json:"totalFees"`
	TotalDuty        float64                `json:"totalDuty"`
	TotalDiscount    float64                `json:"totalDiscount"`
	TotalShipping    float64                `json:"totalShipping"`
	TotalAmount      float64                `json:"totalAmount"`
	Items            []OrderItem            `json:"items"`
	ShippingChoice   ShippingChoiceResponse `json:"shippingChoice"`
	PaymentSessionID string                 `json:"paymentSessionId"`
	State            string                 `json:"state"`
	FraudState       string                 `json:"fraudState"`
	SourceID         string                 `json:"sourceId"`
	Charges          []Charge               `json:"charges"`
	LiveMode         bool                   `json:"liveMode"`
	UpdatedTime      string                 `json:"updatedTime"`
	Metadata         map[string]string      `json:"metadata,omitempty"`
}

type OrdersResponse struct {
	HasMore bool            `json:"hasMore"`
	Data    []OrderResponse `json:"data"`
}

type OrderPayload struct {
	CheckoutID string            `json:"checkoutId"`
	SourceID   string            `json:"sourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type SourceOwner struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Address   Address `json:"address"`
}

type SourcePayload struct {
	Type             string      `json:"type"`
	PaymentSessionID string      `json:"paymentSessionId"`
	Reusable         bool        `json:"reusable"`
	Owner            SourceOwner `json:"owner"`
}

type SourceResponse struct {
	ID               string      `json:"id"`
	CreatedTime      string      `json:"createdTime"`
	Type             string      `json:"type"`
	Currency         string      `json:"currency"`
	Amount           float64     `json:"amount"`
	Reusable         bool        `json:"reusable"`
	State            string      `json:"state"`
	Owner            SourceOwner `json:"owner"`
	PaymentSessionID string      `json:"paymentSessionId"`
	ClientSecret     string      `json:"clientSecret"`
	LiveMode         bool        `json:"liveMode"`
}

type RefundPayload struct {
	OrderID  string  `json:"orderId"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Reason   string  `json:"reason,omitempty"`
}

type RefundResponse struct {
	ID             string  `json:"id"`
	CreatedTime    string  `json:"createdTime"`
	OrderID        string  `json:"orderId"`
	Currency       string  `json:"currency"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	RefundedAmount float64 `json:"refundedAmount"`
	Reason         string  `json:"reason"`
	FailureReason  string  `json:"failureReason"`
	State          string  `json:"state"`
	LiveMode       bool    `json:"liveMode"`
}

type ReturnItem struct {
	ItemID   string `json:"itemId"`
	SkuID    string `json:"skuId"`
	Quantity int    `json:"quantity"`
}

type ReturnPayload struct {
	OrderID string       `json:"orderId"`
	Reason  string       `json:"reason"`
	Items   []ReturnItem `json:"items"`
}

type ReturnResponse struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime"`
	Currency    string `json:"currency"`
	OrderID     string `json:"orderId"`
	Reason      string `json:"reason"`
	State       string `json:"state"`
	LiveMode    bool   `json:"liveMode"`
}

// FulfillmentItem doubles as fulfillment (Quantity set) and cancellation
// (CancelQuantity set); the Processor keys on whichever is present.
type FulfillmentItem struct {
	ItemID         string `json:"itemId"`
	Quantity       int    `json:"quantity,omitempty"`
	CancelQuantity int    `json:"cancelQuantity,omitempty"`
}

type FulfillmentPayload struct {
	OrderID string            `json:"orderId"`
	Items   []FulfillmentItem `json:"items"`
}

type FulfillmentResponse struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime"`
	OrderID     string `json:"orderId"`
	LiveMode    bool   `json:"liveMode"`
}

type WebhookPayload struct {
	Types      []string `json:"types"`
	APIVersion string   `json:"apiVersion"`
	Enabled    bool     `json:"enabled"`
	Address    string   `json:"address"`
}

type WebhookResponse struct {
	ID            string   `json:"id"`
	CreatedTime   string   `json:"createdTime"`
	UpdatedTime   string   `json:"updatedTime"`
	Types         []string `json:"types"`
	APIVersion    string   `json:"apiVersion"`
	Enabled       bool     `json:"enabled"`
	Address       string   `json:"address"`
	TransportType string   `json:"transportType"`
}
